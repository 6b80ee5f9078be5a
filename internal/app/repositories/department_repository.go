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

// IDepartmentRepository defines the interface for department persistence
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create inserts a new department row
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO department (name, school_id, head_of_department, description)
		VALUES ($1, $2, $3, $4)
		RETURNING dep_id
	`

	err := r.db.QueryRow(ctx, query,
		department.Name,
		department.SchoolID,
		department.HeadOfDepartment,
		department.Description,
	).Scan(&department.DepID)

	if err != nil {
		return fmt.Errorf("error inserting department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT dep_id, name, school_id, head_of_department, description
		FROM department
		WHERE dep_id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.DepID,
		&department.Name,
		&department.SchoolID,
		&department.HeadOfDepartment,
		&department.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT dep_id, name, school_id, head_of_department, description
		FROM department
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		var department models.Department
		err := rows.Scan(
			&department.DepID,
			&department.Name,
			&department.SchoolID,
			&department.HeadOfDepartment,
			&department.Description,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update overwrites a department row
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE department
		SET name = $1, school_id = $2, head_of_department = $3, description = $4
		WHERE dep_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Name,
		department.SchoolID,
		department.HeadOfDepartment,
		department.Description,
		department.DepID,
	)

	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department by ID
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM department WHERE dep_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("Department has students and cannot be deleted.")
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
