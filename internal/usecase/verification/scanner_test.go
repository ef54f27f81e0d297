package verification

import (
	"context"
	"testing"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQR = `{"name":"Ada Obi","driverId":"LAG-123-4567","plateNumber":"KJA-123-BC","vehicle":"Toyota Camry","expiryDate":"2024-07-19","status":"Valid"}`

func TestScanner_Success(t *testing.T) {
	s := NewScanner()
	assert.Equal(t, StateIdle, s.State())

	s.Start()
	assert.Equal(t, StateScanning, s.State())

	payload, err := s.Complete(validQR)
	require.NoError(t, err)
	assert.Equal(t, "LAG-123-4567", payload.DriverID)
	assert.Equal(t, StateSuccess, s.State())

	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, payload, result)
}

func TestScanner_Error(t *testing.T) {
	s := NewScanner()
	s.Start()

	_, err := s.Complete(`{"name":"No Id"}`)
	assert.ErrorIs(t, err, domain.ErrInvalidQRCode)
	assert.Equal(t, StateError, s.State())

	result, err := s.Result()
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidQRCode)
}

func TestScanner_CompleteOutsideScanning(t *testing.T) {
	s := NewScanner()

	_, err := s.Complete(validQR)
	assert.ErrorIs(t, err, domain.ErrScannerNotScanning)
	assert.Equal(t, StateIdle, s.State())

	s.Start()
	_, err = s.Complete(validQR)
	require.NoError(t, err)

	// Из success нельзя завершить повторно без нового Start
	_, err = s.Complete(validQR)
	assert.ErrorIs(t, err, domain.ErrScannerNotScanning)
}

func TestScanner_Reset(t *testing.T) {
	for _, final := range []string{validQR, "garbage"} {
		s := NewScanner()
		s.Start()
		_, _ = s.Complete(final)

		s.Reset()
		assert.Equal(t, StateIdle, s.State())
		result, err := s.Result()
		assert.Nil(t, result)
		assert.NoError(t, err)
	}

	// Reset во время сканирования
	s := NewScanner()
	s.Start()
	s.Reset()
	assert.Equal(t, StateIdle, s.State())
}

func TestService_Verify(t *testing.T) {
	svc := NewService(latency.Disabled(), logger.NewNoop())

	v, err := svc.Verify(context.Background(), "user_officer", validQR)
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, v.Status)
	assert.True(t, v.Valid)
	assert.Equal(t, "KJA-123-BC", v.Payload.PlateNumber)

	_, err = svc.Verify(context.Background(), "user_officer", "not json")
	assert.ErrorIs(t, err, domain.ErrInvalidQRCode)
}
