package dto

// InterviewRoundRequest represents an interview round insert or update payload
type InterviewRoundRequest struct {
	CompanyID   int64   `json:"company_id" binding:"required"`
	RoundName   string  `json:"round_name" binding:"required"`
	RoundNumber int     `json:"round_number" binding:"required"`
	RoundType   *string `json:"round_type"`
	RoundDate   string  `json:"round_date" binding:"required,dateformat"`
	Description *string `json:"description"`
}

// RoundParticipationRequest links a student to a round
type RoundParticipationRequest struct {
	RoundID   int64   `json:"round_id" binding:"required"`
	StudentID int64   `json:"student_id" binding:"required"`
	Remarks   *string `json:"remarks"`
}

// RoundStudentPair identifies a participation by its round and student
type RoundStudentPair struct {
	RoundID   int64 `json:"round_id" binding:"required"`
	StudentID int64 `json:"student_id" binding:"required"`
}
