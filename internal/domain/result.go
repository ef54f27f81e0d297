package domain

// Result - итог операции, которая может не найти данных водителя
// Success = false без ошибки означает, что изменений не было
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
