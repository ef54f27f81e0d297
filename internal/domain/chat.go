package domain

// ChatRole - автор сообщения в чате с ассистентом
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage - сообщение в чате с ассистентом
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
