package domain

import (
	"fmt"
	"strconv"
	"time"
)

// RandomSource - источник случайных чисел (совместим с *rand.Rand из math/rand/v2)
type RandomSource interface {
	IntN(n int) int
}

// DefaultPhone - телефон, который получает каждый новый водитель
const DefaultPhone = "+234 800 000 0000"

// NewDriverProfile создает профиль нового водителя
// Автомобиль всегда Toyota Camry 2020, номера генерируются случайно
// Коллизии не проверяются: повторная генерация не предусмотрена
func NewDriverProfile(name, email string, rnd RandomSource, now time.Time) Profile {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 10 {
		millis = millis[len(millis)-10:]
	}

	return Profile{
		Name:     name,
		DriverID: fmt.Sprintf("LAG-%d-%d", 100+rnd.IntN(900), 1000+rnd.IntN(9000)),
		Phone:    DefaultPhone,
		Email:    email,
		Vehicle: Vehicle{
			Make:        "Toyota",
			Model:       "Camry",
			Year:        2020,
			PlateNumber: fmt.Sprintf("KJA-%d-BC", 100+rnd.IntN(900)),
			VIN:         "JN8AZ08W" + millis,
		},
	}
}

// NewDefaultUserData создает стартовый набор данных водителя
// Это демонстрационные данные: от аккаунта зависит только профиль
func NewDefaultUserData(profile Profile) *UserData {
	return &UserData{
		Profile: profile,
		Documents: []Document{
			{ID: "1", Name: "Vehicle License", IssueDate: "2023-11-01", ExpiryDate: "2024-10-31", Status: DocumentValid},
			{ID: "2", Name: "Insurance", IssueDate: "2024-01-15", ExpiryDate: "2024-08-01", Status: DocumentExpiringSoon},
			{ID: "3", Name: "Inspection Slip", IssueDate: "2023-07-20", ExpiryDate: "2024-07-19", Status: DocumentExpired},
		},
		Inspections: []Inspection{
			{ID: "1", Date: "2023-07-20", Center: "LACVIS, Ojodu Berger", Status: InspectionPassed, Expiry: "2024-07-19"},
			{ID: "2", Date: "2022-07-18", Center: "LACVIS, Ikorodu", Status: InspectionPassed, Expiry: "2023-07-17"},
		},
		Notifications: []Notification{
			{ID: "1", Title: "Renewal Reminder", Message: "Your roadworthiness certificate expires in 15 days. Please book an inspection.", Date: "2024-07-04", Read: false},
			{ID: "2", Title: "Regulatory Update", Message: "New documentation requirements will be effective from August 1st, 2024.", Date: "2024-06-28", Read: true},
		},
		Fines: []Fine{
			{ID: "fine1", Violation: "Driving without a valid driver's license", Date: "2024-06-15", Amount: 10000, Status: FineUnpaid},
			{ID: "fine2", Violation: "Parking in a restricted area", Date: "2024-05-20", Amount: 5000, Status: FinePaid},
		},
	}
}
