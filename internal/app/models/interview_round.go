package models

// InterviewRound represents an interview stage belonging to a company
type InterviewRound struct {
	RoundID     int64   `json:"round_id" db:"round_id"`
	CompanyID   int64   `json:"company_id" db:"company_id"`
	RoundName   string  `json:"round_name" db:"round_name"`
	RoundNumber int     `json:"round_number" db:"round_number"`
	RoundType   *string `json:"round_type,omitempty" db:"round_type"`
	RoundDate   string  `json:"round_date" db:"round_date"`
	Description *string `json:"description,omitempty" db:"description"`
}

// RoundParticipation links a student to an interview round
type RoundParticipation struct {
	ParticipationID int64   `json:"participation_id" db:"participation_id"`
	RoundID         int64   `json:"round_id" db:"round_id"`
	StudentID       int64   `json:"student_id" db:"student_id"`
	Remarks         *string `json:"remarks,omitempty" db:"remarks"`
}

// RoundParticipant is a student row joined with their participation remarks
type RoundParticipant struct {
	Student
	Remarks *string `json:"remarks,omitempty"`
}

// ParticipantEmail carries the contact addresses of a round participant,
// used when mailing everyone in a round.
type ParticipantEmail struct {
	StudentID     int64   `json:"student_id"`
	Name          string  `json:"name"`
	CollegeEmail  *string `json:"college_email,omitempty"`
	PersonalEmail *string `json:"personal_email,omitempty"`
}
