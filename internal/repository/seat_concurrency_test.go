//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/repository"
	"governance-portal-backend/internal/service"
	"governance-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentUserSeatsRespectCap(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.SetupTest()
	defer base.TearDownTest()

	factories := testutils.NewFactorySet()
	fixture := factories.CreateTeamFixture(models.TenantTypeFarm)
	license := factories.License.WithSeats(fixture.Team.ID, 3, 0)
	purchase := factories.Purchase.Create(fixture.Team.ID, license.ID)

	const contenders = 10
	users := make([]uuid.UUID, 0, contenders)
	for i := 0; i < contenders; i++ {
		user, _ := factories.AddMember(fixture, fixture.ViewerRole)
		users = append(users, user.ID)
		base.Insert(t, user)
	}
	base.Insert(t, append(fixture.Records(), license, purchase)...)

	manager := service.NewEntitlementManager(repository.NewStore(base.DB), validator.New(), nil)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		granted  int
		rejected int
		failures []error
	)
	for _, userID := range users {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			_, err := manager.AssignToUser(ctx, purchase.ID, userID, nil)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				granted++
			case errors.Is(err, apperrors.ErrUserSeatLimitReached):
				rejected++
			default:
				failures = append(failures, err)
			}
		}(userID)
	}
	wg.Wait()

	require.Empty(t, failures)
	assert.Equal(t, 3, granted)
	assert.Equal(t, contenders-3, rejected)

	var seats int64
	require.NoError(t, base.DB.Model(&models.UserLicense{}).Where("purchased_license_id = ?", purchase.ID).Count(&seats).Error)
	assert.Equal(t, int64(3), seats)
}

func TestConcurrentLocationSeatsRespectCap(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.SetupTest()
	defer base.TearDownTest()

	factories := testutils.NewFactorySet()
	fixture := factories.CreateTeamFixture(models.TenantTypePPE)
	license := factories.License.WithSeats(fixture.Team.ID, 0, 2)
	purchase := factories.Purchase.Create(fixture.Team.ID, license.ID)
	base.Insert(t, append(fixture.Records(), license, purchase)...)

	const contenders = 6
	locations := make([]uuid.UUID, 0, contenders)
	for i := 0; i < contenders; i++ {
		location := factories.Location.Create(fixture.Team.ID)
		base.Insert(t, location)
		locations = append(locations, location.ID)
	}

	manager := service.NewEntitlementManager(repository.NewStore(base.DB), validator.New(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, contenders)
	for _, locationID := range locations {
		wg.Add(1)
		go func(locationID uuid.UUID) {
			defer wg.Done()
			_, err := manager.AssignToLocation(ctx, purchase.ID, locationID, nil)
			errs <- err
		}(locationID)
	}
	wg.Wait()
	close(errs)

	granted := 0
	for err := range errs {
		if err == nil {
			granted++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrLocationSeatLimitReached)
	}
	assert.Equal(t, 2, granted)
}
