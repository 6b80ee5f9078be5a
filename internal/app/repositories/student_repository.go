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

// IStudentRepository defines the interface for student persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	RollNumberExists(ctx context.Context, rollNumber string) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByRollNumber(ctx context.Context, rollNumber string) error
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	student_id, name, roll_number, school_id, dep_id, year_of_study,
	personal_email, college_email, phone_number,
	to_char(date_of_birth, 'YYYY-MM-DD') AS date_of_birth,
	gender, city, state, tenth_percentage, twelfth_percentage,
	diploma_percentage, cpi_after_7th_sem, cpi_after_8th_sem, remark,
	category, first_sem_spi, second_sem_spi, third_sem_spi,
	fourth_fifth_sem_spi, sixth_sem_spi, seventh_sem_spi, eighth_sem_spi,
	no_of_backlog, no_of_active_backlog, optout`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.StudentID,
		&s.Name,
		&s.RollNumber,
		&s.SchoolID,
		&s.DepID,
		&s.YearOfStudy,
		&s.PersonalEmail,
		&s.CollegeEmail,
		&s.PhoneNumber,
		&s.DateOfBirth,
		&s.Gender,
		&s.City,
		&s.State,
		&s.TenthPercentage,
		&s.TwelfthPercentage,
		&s.DiplomaPercentage,
		&s.CPIAfter7thSem,
		&s.CPIAfter8thSem,
		&s.Remark,
		&s.Category,
		&s.FirstSemSPI,
		&s.SecondSemSPI,
		&s.ThirdSemSPI,
		&s.FourthFifthSemSPI,
		&s.SixthSemSPI,
		&s.SeventhSemSPI,
		&s.EighthSemSPI,
		&s.NoOfBacklog,
		&s.NoOfActiveBacklog,
		&s.Optout,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student (
			name, roll_number, school_id, dep_id, year_of_study,
			personal_email, college_email, phone_number, date_of_birth,
			gender, city, state, tenth_percentage, twelfth_percentage,
			diploma_percentage, cpi_after_7th_sem, cpi_after_8th_sem, remark,
			category, first_sem_spi, second_sem_spi, third_sem_spi,
			fourth_fifth_sem_spi, sixth_sem_spi, seventh_sem_spi,
			eighth_sem_spi, no_of_backlog, no_of_active_backlog, optout
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			$27, $28, $29
		)
		RETURNING student_id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.RollNumber,
		student.SchoolID,
		student.DepID,
		student.YearOfStudy,
		student.PersonalEmail,
		student.CollegeEmail,
		student.PhoneNumber,
		student.DateOfBirth,
		student.Gender,
		student.City,
		student.State,
		student.TenthPercentage,
		student.TwelfthPercentage,
		student.DiplomaPercentage,
		student.CPIAfter7thSem,
		student.CPIAfter8thSem,
		student.Remark,
		student.Category,
		student.FirstSemSPI,
		student.SecondSemSPI,
		student.ThirdSemSPI,
		student.FourthFifthSemSPI,
		student.SixthSemSPI,
		student.SeventhSemSPI,
		student.EighthSemSPI,
		student.NoOfBacklog,
		student.NoOfActiveBacklog,
		student.Optout,
	).Scan(&student.StudentID)

	if err != nil {
		return fmt.Errorf("error inserting student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT` + studentColumns + ` FROM student WHERE student_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByRollNumber retrieves a student by roll number
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	query := `SELECT` + studentColumns + ` FROM student WHERE roll_number = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, rollNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by roll number: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + ` FROM student`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// RollNumberExists checks whether a roll number is already registered
func (r *StudentRepository) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student WHERE roll_number = $1)`,
		rollNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Update overwrites a student row
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE student
		SET name = $1, roll_number = $2, school_id = $3, dep_id = $4,
			year_of_study = $5, personal_email = $6, college_email = $7,
			phone_number = $8, date_of_birth = $9, gender = $10, city = $11,
			state = $12, tenth_percentage = $13, twelfth_percentage = $14,
			diploma_percentage = $15, cpi_after_7th_sem = $16,
			cpi_after_8th_sem = $17, remark = $18, category = $19,
			first_sem_spi = $20, second_sem_spi = $21, third_sem_spi = $22,
			fourth_fifth_sem_spi = $23, sixth_sem_spi = $24,
			seventh_sem_spi = $25, eighth_sem_spi = $26, no_of_backlog = $27,
			no_of_active_backlog = $28, optout = $29
		WHERE student_id = $30
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.RollNumber,
		student.SchoolID,
		student.DepID,
		student.YearOfStudy,
		student.PersonalEmail,
		student.CollegeEmail,
		student.PhoneNumber,
		student.DateOfBirth,
		student.Gender,
		student.City,
		student.State,
		student.TenthPercentage,
		student.TwelfthPercentage,
		student.DiplomaPercentage,
		student.CPIAfter7thSem,
		student.CPIAfter8thSem,
		student.Remark,
		student.Category,
		student.FirstSemSPI,
		student.SecondSemSPI,
		student.ThirdSemSPI,
		student.FourthFifthSemSPI,
		student.SixthSemSPI,
		student.SeventhSemSPI,
		student.EighthSemSPI,
		student.NoOfBacklog,
		student.NoOfActiveBacklog,
		student.Optout,
		student.StudentID,
	)

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteByID removes a student by ID
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student WHERE student_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("Student has placement records and cannot be deleted.")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteByRollNumber removes a student by roll number
func (r *StudentRepository) DeleteByRollNumber(ctx context.Context, rollNumber string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student WHERE roll_number = $1`, rollNumber)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("Student has placement records and cannot be deleted.")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
