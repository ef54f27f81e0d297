package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseQRPayload тестирует разбор отсканированного QR-кода
func TestParseQRPayload(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantErr   error
		checkData func(*testing.T, *QRPayload)
	}{
		{
			name: "только обязательные поля",
			text: `{"driverId":"LAG-1-1","expiryDate":"2024-01-01"}`,
			checkData: func(t *testing.T, p *QRPayload) {
				assert.Equal(t, "LAG-1-1", p.DriverID)
				assert.Equal(t, "2024-01-01", p.ExpiryDate)
				assert.Empty(t, p.Name)
				assert.Empty(t, p.PlateNumber)
				assert.Empty(t, p.Vehicle)
				assert.Empty(t, p.Status)
			},
		},
		{
			name: "полный payload",
			text: `{"name":"Ada","driverId":"LAG-123-4567","plateNumber":"KJA-321-BC","vehicle":"Toyota Camry","expiryDate":"2024-07-19","status":"Valid"}`,
			checkData: func(t *testing.T, p *QRPayload) {
				assert.Equal(t, "Ada", p.Name)
				assert.Equal(t, "Toyota Camry", p.Vehicle)
				assert.Equal(t, "Valid", p.Status)
			},
		},
		{
			name: "vehicle объектом",
			text: `{"driverId":"LAG-1-1","expiryDate":"2024-01-01","vehicle":{"make":"Toyota"}}`,
			checkData: func(t *testing.T, p *QRPayload) {
				assert.Equal(t, "LAG-1-1", p.DriverID)
				assert.Equal(t, `{"make":"Toyota"}`, p.Vehicle)
			},
		},
		{
			name: "driverId числом",
			text: `{"driverId":123,"expiryDate":"2024-01-01"}`,
			checkData: func(t *testing.T, p *QRPayload) {
				assert.Equal(t, "123", p.DriverID)
				assert.Equal(t, "2024-01-01", p.ExpiryDate)
			},
		},
		{
			name: "driverId из пробелов",
			text: `{"driverId":"  ","expiryDate":"2024-01-01"}`,
			checkData: func(t *testing.T, p *QRPayload) {
				assert.Equal(t, "  ", p.DriverID)
			},
		},
		{
			name: "лишние поля и null",
			text: `{"driverId":"LAG-1-1","expiryDate":"2024-01-01","status":null,"extra":[1,2]}`,
			checkData: func(t *testing.T, p *QRPayload) {
				assert.Empty(t, p.Status)
			},
		},
		{
			name:    "driverId ноль",
			text:    `{"driverId":0,"expiryDate":"2024-01-01"}`,
			wantErr: ErrInvalidQRCode,
		},
		{
			name:    "expiryDate null",
			text:    `{"driverId":"LAG-1-1","expiryDate":null}`,
			wantErr: ErrInvalidQRCode,
		},
		{
			name:    "нет driverId",
			text:    `{"name":"x"}`,
			wantErr: ErrInvalidQRCode,
		},
		{
			name:    "пустой expiryDate",
			text:    `{"driverId":"LAG-1-1","expiryDate":""}`,
			wantErr: ErrInvalidQRCode,
		},
		{
			name:    "не JSON",
			text:    "https://example.com/not-a-certificate",
			wantErr: ErrInvalidQRCode,
		},
		{
			name:    "JSON массив",
			text:    `["LAG-1-1"]`,
			wantErr: ErrInvalidQRCode,
		},
		{
			name:    "null",
			text:    "null",
			wantErr: ErrInvalidQRCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseQRPayload(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			tt.checkData(t, p)
		})
	}
}

// TestQRPayload_EncodeParse тестирует, что закодированный payload проходит проверку инспектора
func TestQRPayload_EncodeParse(t *testing.T) {
	data := NewDefaultUserData(Profile{
		Name:     "Ada Lovelace",
		DriverID: "LAG-123-4567",
		Vehicle:  Vehicle{Make: "Toyota", Model: "Camry", PlateNumber: "KJA-321-BC"},
	})

	payload := data.QRPayload()
	require.NotNil(t, payload)

	text, err := payload.Encode()
	require.NoError(t, err)
	assert.Contains(t, text, `"driverId":"LAG-123-4567"`)

	parsed, err := ParseQRPayload(text)
	require.NoError(t, err)
	assert.Equal(t, payload, parsed)
	assert.Equal(t, "Toyota Camry", parsed.Vehicle)
	assert.Equal(t, "2024-07-19", parsed.ExpiryDate)
}
