package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

func newTestStudentService() (*StudentService, *mockStudentRepo) {
	repo := newMockStudentRepo()
	return NewStudentService(repo, zerolog.Nop()), repo
}

func studentRequest(rollNumber string) *dto.StudentRequest {
	return &dto.StudentRequest{
		Name:       "Priya Sharma",
		RollNumber: rollNumber,
		SchoolID:   1,
		DepID:      1,
	}
}

func TestInsertStudent(t *testing.T) {
	svc, repo := newTestStudentService()

	student, err := svc.Create(context.Background(), studentRequest("CS001"))
	require.NoError(t, err)
	assert.NotZero(t, student.StudentID)
	assert.Len(t, repo.students, 1)
}

func TestInsertStudentDuplicateRollNumber(t *testing.T) {
	svc, repo := newTestStudentService()
	repo.add(1, "CS001")

	_, err := svc.Create(context.Background(), studentRequest("CS001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
	assert.Len(t, repo.students, 1)
}

func TestUpdateStudentKeepsOwnRollNumber(t *testing.T) {
	svc, repo := newTestStudentService()
	repo.add(1, "CS001")

	// Keeping the current roll number must not trip the uniqueness check
	req := studentRequest("CS001")
	req.Name = "Priya S. Sharma"

	updated, err := svc.Update(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Priya S. Sharma", updated.Name)
}

func TestUpdateStudentRollNumberTaken(t *testing.T) {
	svc, repo := newTestStudentService()
	repo.add(1, "CS001")
	repo.add(2, "CS002")

	_, err := svc.Update(context.Background(), 1, studentRequest("CS002"))
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc, _ := newTestStudentService()

	_, err := svc.Update(context.Background(), 404, studentRequest("CS001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentByRollNumber(t *testing.T) {
	svc, repo := newTestStudentService()
	repo.add(1, "CS001")

	require.NoError(t, svc.DeleteByRollNumber(context.Background(), "CS001"))
	assert.Empty(t, repo.students)

	err := svc.DeleteByRollNumber(context.Background(), "CS001")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
