package domain

// InspectionStatus - результат техосмотра
type InspectionStatus string

const (
	InspectionPassed  InspectionStatus = "Passed"
	InspectionFailed  InspectionStatus = "Failed"
	InspectionPending InspectionStatus = "Pending"
)

// ExpiryNotAvailable - срок действия для записи, по которой еще нет результата
const ExpiryNotAvailable = "N/A"

// Inspection - запись о техосмотре
// В UserData хранятся от новых к старым: последняя запись - первый элемент
type Inspection struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"`
	Center string           `json:"center"`
	Status InspectionStatus `json:"status"`
	Expiry string           `json:"expiry"`
}

// IsPending проверяет, ожидает ли запись результата
func (i *Inspection) IsPending() bool {
	return i.Status == InspectionPending
}

// InspectionCenter - пункт техосмотра (справочные данные, не хранятся у пользователя)
type InspectionCenter struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
