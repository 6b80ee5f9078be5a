package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// IInterviewRoundRepository defines the interface for interview round persistence
type IInterviewRoundRepository interface {
	Create(ctx context.Context, round *models.InterviewRound) error
	GetByID(ctx context.Context, id int64) (*models.InterviewRound, error)
	GetAll(ctx context.Context) ([]*models.InterviewRound, error)
	GetByCompany(ctx context.Context, companyID int64) ([]*models.InterviewRound, error)
	Update(ctx context.Context, round *models.InterviewRound) error
	Delete(ctx context.Context, id int64) error
}

// InterviewRoundRepository handles database operations for interview rounds
type InterviewRoundRepository struct {
	db *pgxpool.Pool
}

// NewInterviewRoundRepository creates a new interview round repository
func NewInterviewRoundRepository(db *pgxpool.Pool) *InterviewRoundRepository {
	return &InterviewRoundRepository{
		db: db,
	}
}

const interviewRoundColumns = `
	round_id, company_id, round_name, round_number, round_type,
	to_char(round_date, 'YYYY-MM-DD') AS round_date, description`

func scanInterviewRound(row pgx.Row) (*models.InterviewRound, error) {
	var r models.InterviewRound
	err := row.Scan(
		&r.RoundID,
		&r.CompanyID,
		&r.RoundName,
		&r.RoundNumber,
		&r.RoundType,
		&r.RoundDate,
		&r.Description,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new interview round row
func (r *InterviewRoundRepository) Create(ctx context.Context, round *models.InterviewRound) error {
	query := `
		INSERT INTO interview_round (
			company_id, round_name, round_number, round_type, round_date, description
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING round_id
	`

	err := r.db.QueryRow(ctx, query,
		round.CompanyID,
		round.RoundName,
		round.RoundNumber,
		round.RoundType,
		round.RoundDate,
		round.Description,
	).Scan(&round.RoundID)

	if err != nil {
		return fmt.Errorf("error inserting interview round: %w", err)
	}

	return nil
}

// GetByID retrieves an interview round by ID
func (r *InterviewRoundRepository) GetByID(ctx context.Context, id int64) (*models.InterviewRound, error) {
	query := `SELECT` + interviewRoundColumns + ` FROM interview_round WHERE round_id = $1`

	round, err := scanInterviewRound(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoundNotFound
		}
		return nil, fmt.Errorf("error retrieving interview round: %w", err)
	}

	return round, nil
}

// GetAll retrieves all interview rounds
func (r *InterviewRoundRepository) GetAll(ctx context.Context) ([]*models.InterviewRound, error) {
	query := `SELECT` + interviewRoundColumns + `
		FROM interview_round
		ORDER BY company_id, round_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving interview rounds: %w", err)
	}
	defer rows.Close()

	rounds := []*models.InterviewRound{}
	for rows.Next() {
		round, err := scanInterviewRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

// GetByCompany retrieves all interview rounds for a company ordered by round number
func (r *InterviewRoundRepository) GetByCompany(ctx context.Context, companyID int64) ([]*models.InterviewRound, error) {
	query := `SELECT` + interviewRoundColumns + `
		FROM interview_round
		WHERE company_id = $1
		ORDER BY round_number`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving interview rounds: %w", err)
	}
	defer rows.Close()

	rounds := []*models.InterviewRound{}
	for rows.Next() {
		round, err := scanInterviewRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

// Update overwrites an interview round row
func (r *InterviewRoundRepository) Update(ctx context.Context, round *models.InterviewRound) error {
	query := `
		UPDATE interview_round
		SET company_id = $1, round_name = $2, round_number = $3,
			round_type = $4, round_date = $5, description = $6
		WHERE round_id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		round.CompanyID,
		round.RoundName,
		round.RoundNumber,
		round.RoundType,
		round.RoundDate,
		round.Description,
		round.RoundID,
	)

	if err != nil {
		return fmt.Errorf("error updating interview round: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoundNotFound
	}

	return nil
}

// Delete removes an interview round by ID
func (r *InterviewRoundRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM interview_round WHERE round_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting interview round: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoundNotFound
	}

	return nil
}
