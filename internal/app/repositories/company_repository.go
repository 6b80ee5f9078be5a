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

// ICompanyRepository defines the interface for company persistence
type ICompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id int64) error
	HasPlacements(ctx context.Context, id int64) (bool, error)
}

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

// Create inserts a new company row
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO company (company_name, email, phone_number, no_of_student_placed)
		VALUES ($1, $2, $3, $4)
		RETURNING company_id
	`

	err := r.db.QueryRow(ctx, query,
		company.CompanyName,
		company.Email,
		company.PhoneNumber,
		company.NoOfStudentPlaced,
	).Scan(&company.CompanyID)

	if err != nil {
		return fmt.Errorf("error inserting company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `
		SELECT company_id, company_name, email, phone_number, no_of_student_placed
		FROM company
		WHERE company_id = $1
	`

	var company models.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.CompanyID,
		&company.CompanyName,
		&company.Email,
		&company.PhoneNumber,
		&company.NoOfStudentPlaced,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return &company, nil
}

// GetAll retrieves all companies
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	query := `
		SELECT company_id, company_name, email, phone_number, no_of_student_placed
		FROM company
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		var company models.Company
		err := rows.Scan(
			&company.CompanyID,
			&company.CompanyName,
			&company.Email,
			&company.PhoneNumber,
			&company.NoOfStudentPlaced,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// Update overwrites a company row
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE company
		SET company_name = $1, email = $2, phone_number = $3, no_of_student_placed = $4
		WHERE company_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		company.CompanyName,
		company.Email,
		company.PhoneNumber,
		company.NoOfStudentPlaced,
		company.CompanyID,
	)

	if err != nil {
		return fmt.Errorf("error updating company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// Delete removes a company by ID
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM company WHERE company_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// HasPlacements reports whether any placement references the company
func (r *CompanyRepository) HasPlacements(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM placement WHERE company_id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking company placements: %w", err)
	}

	return exists, nil
}
