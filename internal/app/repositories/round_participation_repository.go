package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// IRoundParticipationRepository defines the interface for round participation persistence
type IRoundParticipationRepository interface {
	Add(ctx context.Context, participation *models.RoundParticipation) error
	Exists(ctx context.Context, roundID, studentID int64) (bool, error)
	GetAll(ctx context.Context) ([]*models.RoundParticipation, error)
	GetStudentIDsByRound(ctx context.Context, roundID int64) ([]int64, error)
	GetStudentEmailsByRound(ctx context.Context, roundID int64) ([]*models.ParticipantEmail, error)
	GetParticipants(ctx context.Context, roundID int64) ([]*models.RoundParticipant, error)
	UpdateRemarks(ctx context.Context, roundID, studentID int64, remarks *string) error
	DeleteByID(ctx context.Context, participationID int64) error
	Remove(ctx context.Context, roundID, studentID int64) error
}

// RoundParticipationRepository handles database operations for round participation
type RoundParticipationRepository struct {
	db *pgxpool.Pool
}

// NewRoundParticipationRepository creates a new round participation repository
func NewRoundParticipationRepository(db *pgxpool.Pool) *RoundParticipationRepository {
	return &RoundParticipationRepository{
		db: db,
	}
}

// Add registers a student as a participant of a round
func (r *RoundParticipationRepository) Add(ctx context.Context, participation *models.RoundParticipation) error {
	query := `
		INSERT INTO round_participation (round_id, student_id, remarks)
		VALUES ($1, $2, $3)
		RETURNING participation_id
	`

	err := r.db.QueryRow(ctx, query,
		participation.RoundID,
		participation.StudentID,
		participation.Remarks,
	).Scan(&participation.ParticipationID)

	if err != nil {
		return fmt.Errorf("error inserting round participation: %w", err)
	}

	return nil
}

// Exists reports whether the student already participates in the round
func (r *RoundParticipationRepository) Exists(ctx context.Context, roundID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM round_participation
			WHERE round_id = $1 AND student_id = $2
		)`, roundID, studentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking round participation: %w", err)
	}

	return exists, nil
}

// GetAll retrieves every participation row
func (r *RoundParticipationRepository) GetAll(ctx context.Context) ([]*models.RoundParticipation, error) {
	query := `
		SELECT participation_id, round_id, student_id, remarks
		FROM round_participation
		ORDER BY round_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving round participations: %w", err)
	}
	defer rows.Close()

	participations := []*models.RoundParticipation{}
	for rows.Next() {
		var p models.RoundParticipation
		if err := rows.Scan(&p.ParticipationID, &p.RoundID, &p.StudentID, &p.Remarks); err != nil {
			return nil, err
		}
		participations = append(participations, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participations, nil
}

// GetStudentIDsByRound retrieves the ids of students in a round
func (r *RoundParticipationRepository) GetStudentIDsByRound(ctx context.Context, roundID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id FROM round_participation WHERE round_id = $1`,
		roundID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving round student ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// GetStudentEmailsByRound retrieves the contact addresses of a round's participants
func (r *RoundParticipationRepository) GetStudentEmailsByRound(ctx context.Context, roundID int64) ([]*models.ParticipantEmail, error) {
	query := `
		SELECT s.student_id, s.name, s.college_email, s.personal_email
		FROM round_participation rp
		JOIN student s ON s.student_id = rp.student_id
		WHERE rp.round_id = $1
		ORDER BY s.roll_number
	`

	rows, err := r.db.Query(ctx, query, roundID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving round participant emails: %w", err)
	}
	defer rows.Close()

	emails := []*models.ParticipantEmail{}
	for rows.Next() {
		var e models.ParticipantEmail
		if err := rows.Scan(&e.StudentID, &e.Name, &e.CollegeEmail, &e.PersonalEmail); err != nil {
			return nil, err
		}
		emails = append(emails, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}

// GetParticipants retrieves all students participating in a round together with remarks
func (r *RoundParticipationRepository) GetParticipants(ctx context.Context, roundID int64) ([]*models.RoundParticipant, error) {
	query := `
		SELECT s.student_id, s.name, s.roll_number, s.school_id, s.dep_id,
			s.year_of_study, s.personal_email, s.college_email, s.phone_number,
			to_char(s.date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
			s.gender, s.city, s.state, s.tenth_percentage, s.twelfth_percentage,
			s.diploma_percentage, s.cpi_after_7th_sem, s.cpi_after_8th_sem,
			s.remark, s.category, s.first_sem_spi, s.second_sem_spi,
			s.third_sem_spi, s.fourth_fifth_sem_spi, s.sixth_sem_spi,
			s.seventh_sem_spi, s.eighth_sem_spi, s.no_of_backlog,
			s.no_of_active_backlog, s.optout, rp.remarks
		FROM round_participation rp
		JOIN student s ON s.student_id = rp.student_id
		WHERE rp.round_id = $1
		ORDER BY s.roll_number
	`

	rows, err := r.db.Query(ctx, query, roundID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving round participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.RoundParticipant{}
	for rows.Next() {
		var p models.RoundParticipant
		err := rows.Scan(
			&p.StudentID,
			&p.Name,
			&p.RollNumber,
			&p.SchoolID,
			&p.DepID,
			&p.YearOfStudy,
			&p.PersonalEmail,
			&p.CollegeEmail,
			&p.PhoneNumber,
			&p.DateOfBirth,
			&p.Gender,
			&p.City,
			&p.State,
			&p.TenthPercentage,
			&p.TwelfthPercentage,
			&p.DiplomaPercentage,
			&p.CPIAfter7thSem,
			&p.CPIAfter8thSem,
			&p.Remark,
			&p.Category,
			&p.FirstSemSPI,
			&p.SecondSemSPI,
			&p.ThirdSemSPI,
			&p.FourthFifthSemSPI,
			&p.SixthSemSPI,
			&p.SeventhSemSPI,
			&p.EighthSemSPI,
			&p.NoOfBacklog,
			&p.NoOfActiveBacklog,
			&p.Optout,
			&p.Remarks,
		)
		if err != nil {
			return nil, err
		}
		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// UpdateRemarks changes the remarks recorded for a participant
func (r *RoundParticipationRepository) UpdateRemarks(ctx context.Context, roundID, studentID int64, remarks *string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE round_participation
		SET remarks = $1
		WHERE round_id = $2 AND student_id = $3`,
		remarks, roundID, studentID)

	if err != nil {
		return fmt.Errorf("error updating round participation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipationNotFound
	}

	return nil
}

// DeleteByID deletes a participation entry by its id
func (r *RoundParticipationRepository) DeleteByID(ctx context.Context, participationID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM round_participation WHERE participation_id = $1`,
		participationID)

	if err != nil {
		return fmt.Errorf("error deleting round participation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipationNotFound
	}

	return nil
}

// Remove deletes a participation entry
func (r *RoundParticipationRepository) Remove(ctx context.Context, roundID, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM round_participation
		WHERE round_id = $1 AND student_id = $2`,
		roundID, studentID)

	if err != nil {
		return fmt.Errorf("error deleting round participation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipationNotFound
	}

	return nil
}
