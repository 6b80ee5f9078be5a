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

type mockRoundRepo struct {
	rounds map[int64]*models.InterviewRound
}

func newMockRoundRepo() *mockRoundRepo {
	return &mockRoundRepo{rounds: map[int64]*models.InterviewRound{}}
}

func (m *mockRoundRepo) add(id, companyID int64, name string) *models.InterviewRound {
	r := &models.InterviewRound{RoundID: id, CompanyID: companyID, RoundName: name, RoundNumber: 1, RoundDate: "2024-07-01"}
	m.rounds[id] = r
	return r
}

func (m *mockRoundRepo) Create(ctx context.Context, round *models.InterviewRound) error {
	round.RoundID = int64(len(m.rounds) + 1)
	m.rounds[round.RoundID] = round
	return nil
}

func (m *mockRoundRepo) GetByID(ctx context.Context, id int64) (*models.InterviewRound, error) {
	r, ok := m.rounds[id]
	if !ok {
		return nil, apperrors.ErrRoundNotFound
	}
	return r, nil
}

func (m *mockRoundRepo) GetAll(ctx context.Context) ([]*models.InterviewRound, error) {
	out := []*models.InterviewRound{}
	for _, r := range m.rounds {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoundRepo) GetByCompany(ctx context.Context, companyID int64) ([]*models.InterviewRound, error) {
	out := []*models.InterviewRound{}
	for _, r := range m.rounds {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRoundRepo) Update(ctx context.Context, round *models.InterviewRound) error {
	if _, ok := m.rounds[round.RoundID]; !ok {
		return apperrors.ErrRoundNotFound
	}
	m.rounds[round.RoundID] = round
	return nil
}

func (m *mockRoundRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.rounds[id]; !ok {
		return apperrors.ErrRoundNotFound
	}
	delete(m.rounds, id)
	return nil
}

type mockParticipationRepo struct {
	entries map[int64]*models.RoundParticipation
	nextID  int64
}

func newMockParticipationRepo() *mockParticipationRepo {
	return &mockParticipationRepo{entries: map[int64]*models.RoundParticipation{}, nextID: 1}
}

func (m *mockParticipationRepo) Add(ctx context.Context, participation *models.RoundParticipation) error {
	participation.ParticipationID = m.nextID
	m.nextID++
	m.entries[participation.ParticipationID] = participation
	return nil
}

func (m *mockParticipationRepo) Exists(ctx context.Context, roundID, studentID int64) (bool, error) {
	for _, p := range m.entries {
		if p.RoundID == roundID && p.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockParticipationRepo) GetAll(ctx context.Context) ([]*models.RoundParticipation, error) {
	out := []*models.RoundParticipation{}
	for _, p := range m.entries {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockParticipationRepo) GetStudentIDsByRound(ctx context.Context, roundID int64) ([]int64, error) {
	ids := []int64{}
	for _, p := range m.entries {
		if p.RoundID == roundID {
			ids = append(ids, p.StudentID)
		}
	}
	return ids, nil
}

func (m *mockParticipationRepo) GetStudentEmailsByRound(ctx context.Context, roundID int64) ([]*models.ParticipantEmail, error) {
	return []*models.ParticipantEmail{}, nil
}

func (m *mockParticipationRepo) GetParticipants(ctx context.Context, roundID int64) ([]*models.RoundParticipant, error) {
	return []*models.RoundParticipant{}, nil
}

func (m *mockParticipationRepo) UpdateRemarks(ctx context.Context, roundID, studentID int64, remarks *string) error {
	for _, p := range m.entries {
		if p.RoundID == roundID && p.StudentID == studentID {
			p.Remarks = remarks
			return nil
		}
	}
	return apperrors.ErrParticipationNotFound
}

func (m *mockParticipationRepo) DeleteByID(ctx context.Context, participationID int64) error {
	if _, ok := m.entries[participationID]; !ok {
		return apperrors.ErrParticipationNotFound
	}
	delete(m.entries, participationID)
	return nil
}

func (m *mockParticipationRepo) Remove(ctx context.Context, roundID, studentID int64) error {
	for id, p := range m.entries {
		if p.RoundID == roundID && p.StudentID == studentID {
			delete(m.entries, id)
			return nil
		}
	}
	return apperrors.ErrParticipationNotFound
}

func newTestParticipationService() (*RoundParticipationService, *mockParticipationRepo, *mockRoundRepo, *mockStudentRepo) {
	participationRepo := newMockParticipationRepo()
	roundRepo := newMockRoundRepo()
	studentRepo := newMockStudentRepo()
	svc := NewRoundParticipationService(participationRepo, roundRepo, studentRepo, zerolog.Nop())
	return svc, participationRepo, roundRepo, studentRepo
}

func TestAddRoundParticipant(t *testing.T) {
	svc, repo, roundRepo, studentRepo := newTestParticipationService()
	roundRepo.add(1, 10, "Technical Round")
	studentRepo.add(1, "CS001")

	participation, err := svc.Add(context.Background(), &dto.RoundParticipationRequest{RoundID: 1, StudentID: 1})
	require.NoError(t, err)
	assert.NotZero(t, participation.ParticipationID)
	assert.Len(t, repo.entries, 1)
}

func TestAddRoundParticipantTwice(t *testing.T) {
	svc, repo, roundRepo, studentRepo := newTestParticipationService()
	roundRepo.add(1, 10, "Technical Round")
	studentRepo.add(1, "CS001")
	ctx := context.Background()

	_, err := svc.Add(ctx, &dto.RoundParticipationRequest{RoundID: 1, StudentID: 1})
	require.NoError(t, err)

	_, err = svc.Add(ctx, &dto.RoundParticipationRequest{RoundID: 1, StudentID: 1})
	require.Error(t, err)
	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "Student already added to this round.", customErr.Message)
	assert.Len(t, repo.entries, 1)
}

func TestAddRoundParticipantUnknownRound(t *testing.T) {
	svc, _, _, studentRepo := newTestParticipationService()
	studentRepo.add(1, "CS001")

	_, err := svc.Add(context.Background(), &dto.RoundParticipationRequest{RoundID: 99, StudentID: 1})
	assert.ErrorIs(t, err, apperrors.ErrRoundNotFound)
}

func TestAddRoundParticipantUnknownStudent(t *testing.T) {
	svc, _, roundRepo, _ := newTestParticipationService()
	roundRepo.add(1, 10, "Technical Round")

	_, err := svc.Add(context.Background(), &dto.RoundParticipationRequest{RoundID: 1, StudentID: 99})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetRoundStudentIDs(t *testing.T) {
	svc, _, roundRepo, studentRepo := newTestParticipationService()
	roundRepo.add(1, 10, "Technical Round")
	studentRepo.add(1, "CS001")
	studentRepo.add(2, "CS002")
	ctx := context.Background()

	_, err := svc.Add(ctx, &dto.RoundParticipationRequest{RoundID: 1, StudentID: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &dto.RoundParticipationRequest{RoundID: 1, StudentID: 2})
	require.NoError(t, err)

	ids, err := svc.GetStudentIDs(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestGetRoundStudentIDsUnknownRound(t *testing.T) {
	svc, _, _, _ := newTestParticipationService()

	_, err := svc.GetStudentIDs(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrRoundNotFound)
}

func TestRemoveRoundParticipant(t *testing.T) {
	svc, repo, roundRepo, studentRepo := newTestParticipationService()
	roundRepo.add(1, 10, "Technical Round")
	studentRepo.add(1, "CS001")
	ctx := context.Background()

	_, err := svc.Add(ctx, &dto.RoundParticipationRequest{RoundID: 1, StudentID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, 1, 1))
	assert.Empty(t, repo.entries)

	err = svc.Remove(ctx, 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrParticipationNotFound)
}
