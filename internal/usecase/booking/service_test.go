package booking

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository"
	"github.com/frontandrew/drivesure/internal/repository/kv"
	"github.com/frontandrew/drivesure/internal/repository/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "user_1"

func newTestService(t *testing.T) (*Service, repository.UserDataRepository) {
	t.Helper()
	svc, repo, _ := newTestServiceWithStore(t)
	return svc, repo
}

func newTestServiceWithStore(t *testing.T) (*Service, repository.UserDataRepository, kv.Store) {
	t.Helper()

	store := kv.NewMemoryStore()
	repo := kvstore.NewUserDataRepository(store)
	require.NoError(t, repo.Put(context.Background(), userID, domain.NewDefaultUserData(domain.Profile{Name: "Ada"})))

	svc := NewService(repo, latency.Disabled(), logger.NewNoop())
	svc.now = func() time.Time { return time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC) }
	return svc, repo, store
}

func TestFetchInspectionCenters(t *testing.T) {
	svc, _ := newTestService(t)

	centers, err := svc.FetchInspectionCenters(context.Background())
	require.NoError(t, err)
	require.Len(t, centers, 4)
	assert.Equal(t, "LACVIS, Ojodu Berger", centers[0].Name)
	assert.Equal(t, "LACVIS, Epe", centers[3].Name)

	// Изменение результата не влияет на следующий вызов
	centers[0].Name = "changed"
	again, err := svc.FetchInspectionCenters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "LACVIS, Ojodu Berger", again[0].Name)
}

func TestBookInspection(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	result, err := svc.BookInspection(ctx, userID, &BookingRequest{
		Center: "LACVIS, Gbagada",
		Date:   "2024-08-01",
		Time:   "10:00 AM",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Booking confirmed.", result.Message)

	data, err := repo.Get(ctx, userID)
	require.NoError(t, err)

	require.Len(t, data.Inspections, 3)
	latest := data.LatestInspection()
	assert.True(t, strings.HasPrefix(latest.ID, "insp_"))
	assert.Equal(t, "2024-08-01", latest.Date)
	assert.Equal(t, "LACVIS, Gbagada", latest.Center)
	assert.Equal(t, domain.InspectionPending, latest.Status)
	assert.Equal(t, domain.ExpiryNotAvailable, latest.Expiry)

	require.Len(t, data.Notifications, 3)
	n := data.Notifications[0]
	assert.True(t, strings.HasPrefix(n.ID, "notif_"))
	assert.Equal(t, "Booking Confirmed!", n.Title)
	assert.Equal(t, "Your inspection at LACVIS, Gbagada is confirmed for 2024-08-01.", n.Message)
	assert.Equal(t, "2024-07-10", n.Date)
	assert.False(t, n.Read)

	// QR-код теперь показывает срок "N/A"
	assert.Equal(t, domain.ExpiryNotAvailable, data.QRPayload().ExpiryDate)
}

func TestBookInspection_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestServiceWithStore(t)

	before, err := store.Get(ctx, repository.UserDataKey)
	require.NoError(t, err)

	result, err := svc.BookInspection(ctx, "user_unknown", &BookingRequest{
		Center: "LACVIS, Epe",
		Date:   "2024-08-01",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)

	// Хранилище не изменилось
	after, err := store.Get(ctx, repository.UserDataKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	var all map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(after, &all))
	assert.Contains(t, all, userID)
	assert.NotContains(t, all, "user_unknown")
}

func TestBookInspection_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  BookingRequest
	}{
		{name: "без центра", req: BookingRequest{Date: "2024-08-01"}},
		{name: "без даты", req: BookingRequest{Center: "LACVIS, Epe"}},
		{name: "дата не ISO", req: BookingRequest{Center: "LACVIS, Epe", Date: "01/08/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			_, err := svc.BookInspection(context.Background(), userID, &tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidBookingData)

			data, err := repo.Get(context.Background(), userID)
			require.NoError(t, err)
			assert.Len(t, data.Inspections, 2)
		})
	}
}
