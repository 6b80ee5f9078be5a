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

func newTestCompanyService() (*CompanyService, *mockCompanyRepo) {
	repo := newMockCompanyRepo()
	return NewCompanyService(repo, zerolog.Nop()), repo
}

func TestInsertCompany(t *testing.T) {
	svc, repo := newTestCompanyService()

	company, err := svc.Create(context.Background(), &dto.CompanyRequest{
		CompanyName: "Acme",
		Email:       "hr@acme.example",
	})
	require.NoError(t, err)
	assert.NotZero(t, company.CompanyID)
	assert.Len(t, repo.companies, 1)
}

func TestDeleteCompany(t *testing.T) {
	svc, repo := newTestCompanyService()
	repo.add(10, "Acme")

	require.NoError(t, svc.Delete(context.Background(), 10))
	assert.Empty(t, repo.companies)
}

func TestDeleteCompanyWithPlacementsBlocked(t *testing.T) {
	svc, repo := newTestCompanyService()
	repo.add(10, "Acme")
	repo.placedFn = func(id int64) bool { return id == 10 }

	err := svc.Delete(context.Background(), 10)
	assert.ErrorIs(t, err, apperrors.ErrCompanyHasPlacements)
	// Blocked delete must leave the row in place
	assert.Len(t, repo.companies, 1)
}

func TestDeleteCompanyNotFound(t *testing.T) {
	svc, _ := newTestCompanyService()

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestUpdateCompany(t *testing.T) {
	svc, repo := newTestCompanyService()
	repo.add(10, "Acme")

	updated, err := svc.Update(context.Background(), 10, &dto.CompanyRequest{
		CompanyName: "Acme Corp",
		Email:       "careers@acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
	assert.Equal(t, "Acme Corp", repo.companies[10].CompanyName)
}
