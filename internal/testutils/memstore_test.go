package testutils

import (
	"context"
	"errors"
	"testing"

	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMemStoreTransactionRollsBackOnError(t *testing.T) {
	store := NewMemStore()
	fs := NewFactorySet()
	fixture := fs.CreateTeamFixture(models.TenantTypeDefault)
	store.Seed(fixture.Records()...)

	boom := errors.New("boom")
	err := store.Transaction(context.Background(), func(tx repository.Store) error {
		status := fs.Status.Create(fixture.Team.ID, "OPEN", 0, true)
		require.NoError(t, tx.Compliance().CreateStatus(context.Background(), status))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	statuses, err := store.Compliance().ListStatuses(context.Background(), fixture.Team.ID)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestMemStoreNestedTransactionRollsBackOnlyInner(t *testing.T) {
	store := NewMemStore()
	fs := NewFactorySet()
	fixture := fs.CreateTeamFixture(models.TenantTypeDefault)
	store.Seed(fixture.Records()...)
	ctx := context.Background()

	err := store.Transaction(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.Compliance().CreateStatus(ctx, fs.Status.Create(fixture.Team.ID, "OPEN", 0, false)))
		inner := tx.Transaction(ctx, func(inner repository.Store) error {
			require.NoError(t, inner.Compliance().CreateStatus(ctx, fs.Status.Create(fixture.Team.ID, "CLOSED", 1, false)))
			return errors.New("inner failed")
		})
		assert.Error(t, inner)
		return nil
	})
	require.NoError(t, err)

	statuses, err := store.Compliance().ListStatuses(ctx, fixture.Team.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "OPEN", statuses[0].Code)
}

func TestMemStoreEnforcesStatusUniqueness(t *testing.T) {
	store := NewMemStore()
	fs := NewFactorySet()
	fixture := fs.CreateTeamFixture(models.TenantTypeDefault)
	store.Seed(fixture.Records()...)
	ctx := context.Background()

	require.NoError(t, store.Compliance().CreateStatus(ctx, fs.Status.Create(fixture.Team.ID, "OPEN", 0, true)))
	assert.ErrorIs(t, store.Compliance().CreateStatus(ctx, fs.Status.Create(fixture.Team.ID, "OPEN", 1, false)), ErrUniqueViolation)
	assert.ErrorIs(t, store.Compliance().CreateStatus(ctx, fs.Status.Create(fixture.Team.ID, "DONE", 1, true)), ErrUniqueViolation)
}

func TestMemStoreFailWith(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()
	down := errors.New("connection refused")

	store.FailWith(down)
	_, err := store.Teams().GetBySlug(ctx, "any")
	assert.ErrorIs(t, err, down)
	assert.ErrorIs(t, store.Transaction(ctx, func(repository.Store) error { return nil }), down)

	store.FailWith(nil)
	_, err = store.Teams().GetBySlug(ctx, "any")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemStoreMemberPreloadsRoleAndUser(t *testing.T) {
	store := NewMemStore()
	fs := NewFactorySet()
	fixture := fs.CreateTeamFixture(models.TenantTypeFarm)
	store.Seed(fixture.Records()...)

	member, err := store.Teams().GetMember(context.Background(), fixture.Team.ID, fixture.Owner.ID)
	require.NoError(t, err)
	require.NotNil(t, member.Role)
	require.NotNil(t, member.User)
	assert.Equal(t, fixture.OwnerRole.ID, member.Role.ID)
	assert.Equal(t, fixture.Owner.Email, member.User.Email)
}
