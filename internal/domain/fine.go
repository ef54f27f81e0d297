package domain

// FineStatus - статус штрафа
type FineStatus string

const (
	FinePaid   FineStatus = "Paid"
	FineUnpaid FineStatus = "Unpaid"
)

// Fine - штраф за нарушение ПДД
// Amount указывается в найрах
type Fine struct {
	ID        string     `json:"id"`
	Violation string     `json:"violation"`
	Date      string     `json:"date"`
	Amount    int64      `json:"amount"`
	Status    FineStatus `json:"status"`
}

// IsUnpaid проверяет, оплачен ли штраф
func (f *Fine) IsUnpaid() bool {
	return f.Status == FineUnpaid
}

// Pay отмечает штраф как оплаченный (остальные поля не меняются)
func (f *Fine) Pay() {
	f.Status = FinePaid
}
