package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// QRPayload - данные, которые водитель показывает инспектору в виде QR-кода
// Формат на проводе - JSON объект
type QRPayload struct {
	Name        string `json:"name"`
	DriverID    string `json:"driverId"`
	PlateNumber string `json:"plateNumber"`
	Vehicle     string `json:"vehicle"`
	ExpiryDate  string `json:"expiryDate"`
	Status      string `json:"status"`
}

// Encode сериализует payload в строку для QR-кода
func (p *QRPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Validate проверяет наличие обязательных полей (driverId и expiryDate)
// Отсутствие остальных полей допускается
func (p *QRPayload) Validate() error {
	if p.DriverID == "" || p.ExpiryDate == "" {
		return ErrInvalidQRCode
	}
	return nil
}

// ParseQRPayload разбирает отсканированный текст QR-кода
// Обязательны только driverId и expiryDate; тип остальных полей не проверяется,
// нестроковые значения сохраняются как JSON текст
func ParseQRPayload(text string) (*QRPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &fields); err != nil || fields == nil {
		return nil, ErrInvalidQRCode
	}

	if !qrFieldSet(fields["driverId"]) || !qrFieldSet(fields["expiryDate"]) {
		return nil, ErrInvalidQRCode
	}

	return &QRPayload{
		Name:        qrFieldText(fields["name"]),
		DriverID:    qrFieldText(fields["driverId"]),
		PlateNumber: qrFieldText(fields["plateNumber"]),
		Vehicle:     qrFieldText(fields["vehicle"]),
		ExpiryDate:  qrFieldText(fields["expiryDate"]),
		Status:      qrFieldText(fields["status"]),
	}, nil
}

// qrFieldSet - поле присутствует и не пустое: не null, false, 0 или ""
func qrFieldSet(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", `""`:
		return false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	return true
}

// qrFieldText возвращает строковое значение поля или его JSON текст
func qrFieldText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil || buf.String() == "null" {
		return ""
	}
	return buf.String()
}
