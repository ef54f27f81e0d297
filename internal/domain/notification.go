package domain

// Notification - уведомление водителя
// Новые уведомления добавляются в начало списка
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
