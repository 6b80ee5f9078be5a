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

// ISchoolRepository defines the interface for school persistence
type ISchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetAll(ctx context.Context) ([]*models.School, error)
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id int64) error
}

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// Create inserts a new school row
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO school (school_name)
		VALUES ($1)
		RETURNING school_id
	`

	err := r.db.QueryRow(ctx, query, school.SchoolName).Scan(&school.SchoolID)
	if err != nil {
		return fmt.Errorf("error inserting school: %w", err)
	}

	return nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `SELECT school_id, school_name FROM school WHERE school_id = $1`

	var school models.School
	err := r.db.QueryRow(ctx, query, id).Scan(&school.SchoolID, &school.SchoolName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}

// GetAll retrieves all schools
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	rows, err := r.db.Query(ctx, `SELECT school_id, school_name FROM school`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		var school models.School
		if err := rows.Scan(&school.SchoolID, &school.SchoolName); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

// Update overwrites a school row
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE school SET school_name = $1 WHERE school_id = $2`,
		school.SchoolName, school.SchoolID)

	if err != nil {
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}

// Delete removes a school by ID
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM school WHERE school_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("School has departments or students and cannot be deleted.")
		}
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}
