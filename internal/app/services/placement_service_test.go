package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

type mockStudentRepo struct {
	students map[int64]*models.Student
	byRoll   map[string]*models.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: map[int64]*models.Student{},
		byRoll:   map[string]*models.Student{},
	}
}

func (m *mockStudentRepo) add(id int64, rollNumber string) *models.Student {
	s := &models.Student{StudentID: id, Name: "Student", RollNumber: rollNumber, SchoolID: 1, DepID: 1}
	m.students[id] = s
	m.byRoll[rollNumber] = s
	return s
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.StudentID = int64(len(m.students) + 1)
	m.students[student.StudentID] = student
	m.byRoll[student.RollNumber] = student
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (m *mockStudentRepo) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	s, ok := m.byRoll[rollNumber]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (m *mockStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockStudentRepo) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	_, ok := m.byRoll[rollNumber]
	return ok, nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if _, ok := m.students[student.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) DeleteByID(ctx context.Context, id int64) error {
	s, ok := m.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.byRoll, s.RollNumber)
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) DeleteByRollNumber(ctx context.Context, rollNumber string) error {
	s, ok := m.byRoll[rollNumber]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.students, s.StudentID)
	delete(m.byRoll, rollNumber)
	return nil
}

type mockCompanyRepo struct {
	companies map[int64]*models.Company
	placedFn  func(id int64) bool
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: map[int64]*models.Company{}}
}

func (m *mockCompanyRepo) add(id int64, name string) *models.Company {
	c := &models.Company{CompanyID: id, CompanyName: name, Email: name + "@corp.example"}
	m.companies[id] = c
	return c
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	company.CompanyID = int64(len(m.companies) + 1)
	m.companies[company.CompanyID] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) GetAll(ctx context.Context) ([]*models.Company, error) {
	out := []*models.Company{}
	for _, c := range m.companies {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	if _, ok := m.companies[company.CompanyID]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	m.companies[company.CompanyID] = company
	return nil
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.companies[id]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	delete(m.companies, id)
	return nil
}

func (m *mockCompanyRepo) HasPlacements(ctx context.Context, id int64) (bool, error) {
	if m.placedFn != nil {
		return m.placedFn(id), nil
	}
	return false, nil
}

type mockPlacementRepo struct {
	placements map[int64]*models.Placement
	nextID     int64
}

func newMockPlacementRepo() *mockPlacementRepo {
	return &mockPlacementRepo{placements: map[int64]*models.Placement{}, nextID: 1}
}

func (m *mockPlacementRepo) Create(ctx context.Context, placement *models.Placement) error {
	// Mirrors the UNIQUE (student_id) constraint
	for _, p := range m.placements {
		if p.StudentID == placement.StudentID {
			return apperrors.ErrAlreadyPlacedElsewhere
		}
	}
	placement.PlacementID = m.nextID
	m.nextID++
	m.placements[placement.PlacementID] = placement
	return nil
}

func (m *mockPlacementRepo) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	p, ok := m.placements[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	return p, nil
}

func (m *mockPlacementRepo) GetAll(ctx context.Context) ([]*models.Placement, error) {
	out := []*models.Placement{}
	for _, p := range m.placements {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPlacementRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]*models.CompanyPlacement, error) {
	out := []*models.CompanyPlacement{}
	for _, p := range m.placements {
		if p.CompanyID == companyID {
			out = append(out, &models.CompanyPlacement{Placement: *p})
		}
	}
	return out, nil
}

func (m *mockPlacementRepo) GetAllDetails(ctx context.Context) ([]*models.PlacementDetail, error) {
	return []*models.PlacementDetail{}, nil
}

func (m *mockPlacementRepo) GetAllStudentIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	for _, p := range m.placements {
		ids = append(ids, p.StudentID)
	}
	return ids, nil
}

func (m *mockPlacementRepo) GetYearWiseCounts(ctx context.Context) ([]*models.YearWiseCount, error) {
	return []*models.YearWiseCount{}, nil
}

func (m *mockPlacementRepo) GetDepartmentWiseCounts(ctx context.Context) ([]*models.DepartmentWiseCount, error) {
	return []*models.DepartmentWiseCount{}, nil
}

func (m *mockPlacementRepo) GetCoreNonCoreCounts(ctx context.Context) ([]*models.CoreNonCoreCount, error) {
	return []*models.CoreNonCoreCount{}, nil
}

func (m *mockPlacementRepo) ExistsForStudentAndCompany(ctx context.Context, studentID, companyID, excludePlacementID int64) (bool, error) {
	for _, p := range m.placements {
		if p.StudentID == studentID && p.CompanyID == companyID && p.PlacementID != excludePlacementID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPlacementRepo) ExistsForStudent(ctx context.Context, studentID, excludePlacementID int64) (bool, error) {
	for _, p := range m.placements {
		if p.StudentID == studentID && p.PlacementID != excludePlacementID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPlacementRepo) Update(ctx context.Context, placement *models.Placement) error {
	if _, ok := m.placements[placement.PlacementID]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	m.placements[placement.PlacementID] = placement
	return nil
}

func (m *mockPlacementRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.placements[id]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	delete(m.placements, id)
	return nil
}

func newTestPlacementService() (*PlacementService, *mockPlacementRepo, *mockStudentRepo, *mockCompanyRepo) {
	placementRepo := newMockPlacementRepo()
	studentRepo := newMockStudentRepo()
	companyRepo := newMockCompanyRepo()
	svc := NewPlacementService(placementRepo, studentRepo, companyRepo, zerolog.Nop())
	return svc, placementRepo, studentRepo, companyRepo
}

func placementRequest(studentID, companyID int64) *dto.PlacementRequest {
	salary := 650000.0
	return &dto.PlacementRequest{
		StudentID:     studentID,
		CompanyID:     companyID,
		Position:      "Software Engineer",
		Salary:        &salary,
		PlacementDate: "2024-06-15",
	}
}

func TestInsertPlacement(t *testing.T) {
	svc, repo, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")

	placement, err := svc.Create(context.Background(), placementRequest(1, 10))
	require.NoError(t, err)
	assert.NotZero(t, placement.PlacementID)
	assert.Len(t, repo.placements, 1)
	assert.Equal(t, 650000.0, placement.Salary)
}

func TestInsertPlacementUnknownStudent(t *testing.T) {
	svc, repo, _, companyRepo := newTestPlacementService()
	companyRepo.add(10, "Acme")

	_, err := svc.Create(context.Background(), placementRequest(99, 10))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, repo.placements)
}

func TestInsertPlacementUnknownCompany(t *testing.T) {
	svc, _, studentRepo, _ := newTestPlacementService()
	studentRepo.add(1, "CS001")

	_, err := svc.Create(context.Background(), placementRequest(1, 99))
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestInsertPlacementSameCompanyConflict(t *testing.T) {
	svc, _, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")
	ctx := context.Background()

	_, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	// The same-company message wins over the generic placed-elsewhere one
	_, err = svc.Create(ctx, placementRequest(1, 10))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPlacedInCompany)
}

// racingPlacementRepo reports no conflicts from the pre-checks while its
// Create keeps enforcing the unique student constraint, like a concurrent
// insert committing between the checks and the insert.
type racingPlacementRepo struct {
	*mockPlacementRepo
}

func (r *racingPlacementRepo) ExistsForStudentAndCompany(ctx context.Context, studentID, companyID, excludePlacementID int64) (bool, error) {
	return false, nil
}

func (r *racingPlacementRepo) ExistsForStudent(ctx context.Context, studentID, excludePlacementID int64) (bool, error) {
	return false, nil
}

func TestInsertPlacementRacingDuplicate(t *testing.T) {
	repo := &racingPlacementRepo{mockPlacementRepo: newMockPlacementRepo()}
	studentRepo := newMockStudentRepo()
	companyRepo := newMockCompanyRepo()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")
	svc := NewPlacementService(repo, studentRepo, companyRepo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	// The pre-checks see nothing, so the conflict must come back from the
	// insert itself as the placed-elsewhere error, not an internal error
	_, err = svc.Create(ctx, placementRequest(1, 10))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPlacedElsewhere)
	assert.Len(t, repo.placements, 1)
}

func TestInsertPlacementPlacedElsewhereConflict(t *testing.T) {
	svc, _, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")
	companyRepo.add(20, "Globex")
	ctx := context.Background()

	_, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	_, err = svc.Create(ctx, placementRequest(1, 20))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPlacedElsewhere)
}

func TestUpdatePlacementKeepsOwnRow(t *testing.T) {
	svc, _, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")
	ctx := context.Background()

	placement, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	// Same student, same company, different position: the row being
	// updated must not conflict with itself
	req := placementRequest(1, 10)
	req.Position = "Senior Engineer"

	updated, err := svc.Update(ctx, placement.PlacementID, req)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Position)
}

func TestUpdatePlacementCannotStealPlacedStudent(t *testing.T) {
	svc, _, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	studentRepo.add(2, "CS002")
	companyRepo.add(10, "Acme")
	companyRepo.add(20, "Globex")
	ctx := context.Background()

	_, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	second, err := svc.Create(ctx, placementRequest(2, 20))
	require.NoError(t, err)

	// Rewriting the second placement onto student 1 must fail: student 1
	// already holds a placement on another row
	_, err = svc.Update(ctx, second.PlacementID, placementRequest(1, 20))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPlacedElsewhere)
}

func TestUpdatePlacementNotFound(t *testing.T) {
	svc, _, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")

	_, err := svc.Update(context.Background(), 404, placementRequest(1, 10))
	assert.ErrorIs(t, err, apperrors.ErrPlacementNotFound)
}

func TestDeletePlacement(t *testing.T) {
	svc, repo, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")
	ctx := context.Background()

	placement, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, placement.PlacementID))
	assert.Empty(t, repo.placements)

	assert.ErrorIs(t, svc.Delete(ctx, placement.PlacementID), apperrors.ErrPlacementNotFound)
}

func TestDeletedStudentCanBePlacedAgain(t *testing.T) {
	svc, _, studentRepo, companyRepo := newTestPlacementService()
	studentRepo.add(1, "CS001")
	companyRepo.add(10, "Acme")
	companyRepo.add(20, "Globex")
	ctx := context.Background()

	placement, err := svc.Create(ctx, placementRequest(1, 10))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, placement.PlacementID))

	_, err = svc.Create(ctx, placementRequest(1, 20))
	assert.NoError(t, err)
}
