package driver

import (
	"context"
	"testing"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/frontandrew/drivesure/internal/repository/kv"
	"github.com/frontandrew/drivesure/internal/repository/kvstore"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "user_1"

func newTestService(t *testing.T) (*Service, repository.UserDataRepository) {
	t.Helper()

	repo := kvstore.NewUserDataRepository(kv.NewMemoryStore())
	profile := domain.Profile{
		Name:     "Ada Obi",
		DriverID: "LAG-123-4567",
		Vehicle:  domain.Vehicle{Make: "Toyota", Model: "Camry", Year: 2020, PlateNumber: "KJA-123-BC"},
	}
	require.NoError(t, repo.Put(context.Background(), userID, domain.NewDefaultUserData(profile)))

	return NewService(repo, latency.Disabled(), logger.NewNoop()), repo
}

func TestGetUserData(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.GetUserData(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", data.Profile.Name)

	_, err = svc.GetUserData(context.Background(), "user_unknown")
	assert.ErrorIs(t, err, domain.ErrUserDataNotFound)
}

func TestDashboard(t *testing.T) {
	svc, _ := newTestService(t)

	dash, err := svc.Dashboard(context.Background(), userID)
	require.NoError(t, err)

	require.NotNil(t, dash.LatestInspection)
	assert.Equal(t, "LACVIS, Ojodu Berger", dash.LatestInspection.Center)
	assert.True(t, dash.HasUnpaidFines)
	assert.Len(t, dash.Notifications, 2)

	want := &domain.QRPayload{
		Name:        "Ada Obi",
		DriverID:    "LAG-123-4567",
		PlateNumber: "KJA-123-BC",
		Vehicle:     "Toyota Camry",
		ExpiryDate:  "2024-07-19",
		Status:      "Valid",
	}
	if diff := cmp.Diff(want, dash.QRPayload); diff != "" {
		t.Errorf("QR payload mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboard_NoInspections(t *testing.T) {
	svc, repo := newTestService(t)
	require.NoError(t, repo.Update(context.Background(), userID, func(data *domain.UserData) error {
		data.Inspections = nil
		return nil
	}))

	dash, err := svc.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, dash.LatestInspection)
	assert.Nil(t, dash.QRPayload)

	_, err = svc.QRPayload(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrNoQRCode)
}

func TestDocumentsAndFines(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	docs, err := svc.Documents(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	fines, err := svc.Fines(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, fines, 2)

	unpaid, err := svc.UnpaidFines(ctx, userID)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "fine1", unpaid[0].ID)
}

func TestPayFine(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.PayFine(ctx, userID, "fine1")
	require.NoError(t, err)
	assert.True(t, result.Success)

	fines, err := svc.Fines(ctx, userID)
	require.NoError(t, err)
	for _, f := range fines {
		assert.Equal(t, domain.FinePaid, f.Status, f.ID)
	}
	// Остальные поля не изменились
	assert.Equal(t, int64(10000), fines[0].Amount)

	// Повторная оплата успешна
	result, err = svc.PayFine(ctx, userID, "fine1")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestPayFine_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, err := svc.GetUserData(ctx, userID)
	require.NoError(t, err)

	result, err := svc.PayFine(ctx, userID, "fine404")
	require.NoError(t, err)
	assert.False(t, result.Success)

	result, err = svc.PayFine(ctx, "user_unknown", "fine1")
	require.NoError(t, err)
	assert.False(t, result.Success)

	after, err := svc.GetUserData(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
