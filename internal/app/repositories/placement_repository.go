package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations
const pgUniqueViolation = "23505"

// IPlacementRepository defines the interface for placement persistence
type IPlacementRepository interface {
	Create(ctx context.Context, placement *models.Placement) error
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	GetAll(ctx context.Context) ([]*models.Placement, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]*models.CompanyPlacement, error)
	GetAllDetails(ctx context.Context) ([]*models.PlacementDetail, error)
	GetAllStudentIDs(ctx context.Context) ([]int64, error)
	GetYearWiseCounts(ctx context.Context) ([]*models.YearWiseCount, error)
	GetDepartmentWiseCounts(ctx context.Context) ([]*models.DepartmentWiseCount, error)
	GetCoreNonCoreCounts(ctx context.Context) ([]*models.CoreNonCoreCount, error)
	ExistsForStudentAndCompany(ctx context.Context, studentID, companyID, excludePlacementID int64) (bool, error)
	ExistsForStudent(ctx context.Context, studentID, excludePlacementID int64) (bool, error)
	Update(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id int64) error
}

// PlacementRepository handles database operations for placements
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
	}
}

const placementColumns = `
	placement_id, student_id, company_id, position, location, salary,
	to_char(placement_date, 'YYYY-MM-DD') AS placement_date,
	offer_type, offer_letter, core_non_core`

func scanPlacement(row pgx.Row) (*models.Placement, error) {
	var p models.Placement
	err := row.Scan(
		&p.PlacementID,
		&p.StudentID,
		&p.CompanyID,
		&p.Position,
		&p.Location,
		&p.Salary,
		&p.PlacementDate,
		&p.OfferType,
		&p.OfferLetter,
		&p.CoreNonCore,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new placement row. A unique violation on student_id
// means a racing insert won; it surfaces as the placed-elsewhere conflict.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	query := `
		INSERT INTO placement (
			company_id, student_id, position, placement_date, location,
			salary, offer_type, offer_letter, core_non_core
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING placement_id
	`

	err := r.db.QueryRow(ctx, query,
		placement.CompanyID,
		placement.StudentID,
		placement.Position,
		placement.PlacementDate,
		placement.Location,
		placement.Salary,
		placement.OfferType,
		placement.OfferLetter,
		placement.CoreNonCore,
	).Scan(&placement.PlacementID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrAlreadyPlacedElsewhere
		}
		return fmt.Errorf("error inserting placement: %w", err)
	}

	return nil
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `SELECT` + placementColumns + ` FROM placement WHERE placement_id = $1`

	placement, err := scanPlacement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}

	return placement, nil
}

// GetAll retrieves all placements
func (r *PlacementRepository) GetAll(ctx context.Context) ([]*models.Placement, error) {
	query := `SELECT` + placementColumns + ` FROM placement`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving placements: %w", err)
	}
	defer rows.Close()

	placements := []*models.Placement{}
	for rows.Next() {
		placement, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return placements, nil
}

// GetByCompanyID retrieves a company's placements with student identification
func (r *PlacementRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]*models.CompanyPlacement, error) {
	query := `
		SELECT
			p.placement_id, p.student_id, p.company_id, p.position, p.location, p.salary,
			to_char(p.placement_date, 'YYYY-MM-DD') AS placement_date,
			p.offer_type, p.offer_letter, p.core_non_core,
			s.roll_number, s.name AS student_name
		FROM placement p
		JOIN student s ON p.student_id = s.student_id
		WHERE p.company_id = $1
		ORDER BY s.roll_number
	`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving placements for company: %w", err)
	}
	defer rows.Close()

	placements := []*models.CompanyPlacement{}
	for rows.Next() {
		var p models.CompanyPlacement
		if err := rows.Scan(
			&p.PlacementID,
			&p.StudentID,
			&p.CompanyID,
			&p.Position,
			&p.Location,
			&p.Salary,
			&p.PlacementDate,
			&p.OfferType,
			&p.OfferLetter,
			&p.CoreNonCore,
			&p.RollNumber,
			&p.StudentName,
		); err != nil {
			return nil, err
		}
		placements = append(placements, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return placements, nil
}

// GetAllDetails retrieves all placements joined with student and company rows
func (r *PlacementRepository) GetAllDetails(ctx context.Context) ([]*models.PlacementDetail, error) {
	query := `
		SELECT
			p.placement_id,
			s.roll_number,
			s.name AS student_name,
			c.company_name,
			p.position,
			p.salary,
			to_char(p.placement_date, 'YYYY-MM-DD') AS placement_date,
			p.location,
			p.offer_type,
			p.offer_letter,
			p.core_non_core
		FROM placement p
		JOIN student s ON p.student_id = s.student_id
		JOIN company c ON p.company_id = c.company_id
		ORDER BY c.company_name, s.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving placement details: %w", err)
	}
	defer rows.Close()

	details := []*models.PlacementDetail{}
	for rows.Next() {
		var d models.PlacementDetail
		if err := rows.Scan(
			&d.PlacementID,
			&d.RollNumber,
			&d.StudentName,
			&d.CompanyName,
			&d.Position,
			&d.Salary,
			&d.PlacementDate,
			&d.Location,
			&d.OfferType,
			&d.OfferLetter,
			&d.CoreNonCore,
		); err != nil {
			return nil, err
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// GetAllStudentIDs retrieves the student ids of all placements
func (r *PlacementRepository) GetAllStudentIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT student_id FROM placement`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving placement student ids: %w", err)
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

// GetYearWiseCounts aggregates placed students by year of study
func (r *PlacementRepository) GetYearWiseCounts(ctx context.Context) ([]*models.YearWiseCount, error) {
	query := `
		SELECT s.year_of_study AS year, COUNT(p.student_id) AS placed_students
		FROM placement p
		JOIN student s ON p.student_id = s.student_id
		GROUP BY s.year_of_study
		ORDER BY s.year_of_study
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving year-wise counts: %w", err)
	}
	defer rows.Close()

	counts := []*models.YearWiseCount{}
	for rows.Next() {
		var c models.YearWiseCount
		if err := rows.Scan(&c.Year, &c.PlacedStudents); err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetDepartmentWiseCounts aggregates placed students by department
func (r *PlacementRepository) GetDepartmentWiseCounts(ctx context.Context) ([]*models.DepartmentWiseCount, error) {
	query := `
		SELECT d.name AS department, COUNT(p.student_id) AS placed_students
		FROM placement p
		JOIN student s ON p.student_id = s.student_id
		JOIN department d ON s.dep_id = d.dep_id
		GROUP BY d.dep_id, d.name
		ORDER BY d.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department-wise counts: %w", err)
	}
	defer rows.Close()

	counts := []*models.DepartmentWiseCount{}
	for rows.Next() {
		var c models.DepartmentWiseCount
		if err := rows.Scan(&c.Department, &c.PlacedStudents); err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetCoreNonCoreCounts aggregates placements by core/non-core classification
func (r *PlacementRepository) GetCoreNonCoreCounts(ctx context.Context) ([]*models.CoreNonCoreCount, error) {
	query := `
		SELECT core_non_core, COUNT(*) AS count
		FROM placement
		WHERE core_non_core IS NOT NULL AND core_non_core != ''
		GROUP BY core_non_core
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving core/non-core counts: %w", err)
	}
	defer rows.Close()

	counts := []*models.CoreNonCoreCount{}
	for rows.Next() {
		var c models.CoreNonCoreCount
		if err := rows.Scan(&c.CoreNonCore, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ExistsForStudentAndCompany checks for a placement of the student at the
// company, optionally excluding one placement row (used by updates).
func (r *PlacementRepository) ExistsForStudentAndCompany(ctx context.Context, studentID, companyID, excludePlacementID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM placement
			WHERE student_id = $1 AND company_id = $2 AND placement_id != $3
		)`,
		studentID, companyID, excludePlacementID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking placement: %w", err)
	}

	return exists, nil
}

// ExistsForStudent checks for any placement of the student, optionally
// excluding one placement row.
func (r *PlacementRepository) ExistsForStudent(ctx context.Context, studentID, excludePlacementID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM placement
			WHERE student_id = $1 AND placement_id != $2
		)`,
		studentID, excludePlacementID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking placement: %w", err)
	}

	return exists, nil
}

// Update overwrites a placement row
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement) error {
	query := `
		UPDATE placement
		SET company_id = $1, student_id = $2, position = $3, placement_date = $4,
			location = $5, salary = $6, offer_type = $7, offer_letter = $8,
			core_non_core = $9
		WHERE placement_id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		placement.CompanyID,
		placement.StudentID,
		placement.Position,
		placement.PlacementDate,
		placement.Location,
		placement.Salary,
		placement.OfferType,
		placement.OfferLetter,
		placement.CoreNonCore,
		placement.PlacementID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrAlreadyPlacedElsewhere
		}
		return fmt.Errorf("error updating placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// Delete removes a placement by ID
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM placement WHERE placement_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}
