package domain

// DocumentStatus - статус документа
// Хранится как есть, из дат не вычисляется
type DocumentStatus string

const (
	DocumentValid        DocumentStatus = "Valid"
	DocumentExpiringSoon DocumentStatus = "Expiring Soon"
	DocumentExpired      DocumentStatus = "Expired"
	DocumentMissing      DocumentStatus = "Missing"
)

// Document - документ водителя (лицензия, страховка, талон техосмотра)
type Document struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	IssueDate  string         `json:"issueDate"`
	ExpiryDate string         `json:"expiryDate"`
	Status     DocumentStatus `json:"status"`
}

// NeedsAttention проверяет, требует ли документ действий от водителя
func (d *Document) NeedsAttention() bool {
	return d.Status != DocumentValid
}
