package domain

import (
	"fmt"
	"strings"
)

// Vehicle - автомобиль водителя
// Генерируется один раз при регистрации
type Vehicle struct {
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	PlateNumber string `json:"plateNumber"`
	VIN         string `json:"vin"`
}

// Title возвращает марку и модель одной строкой ("Toyota Camry")
func (v Vehicle) Title() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", v.Make, v.Model))
}

// NormalizePlateNumber нормализует номер автомобиля (убирает пробелы, приводит к верхнему регистру)
func NormalizePlateNumber(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}

// Profile - профиль водителя
// DriverID - отображаемый код, уникальность не гарантируется
type Profile struct {
	Name     string  `json:"name"`
	DriverID string  `json:"driverId"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Vehicle  Vehicle `json:"vehicle"`
}
