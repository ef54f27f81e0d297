package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/frontandrew/drivesure/internal/delivery/http/middleware"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/i18n"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/usecase/assistant"
	"github.com/gorilla/websocket"
)

const (
	chatWriteTimeout = 10 * time.Second
	chatMaxMessage   = 8 << 10
)

// ChatStarter открывает разговор с ассистентом
type ChatStarter interface {
	Online() bool
	StartChat(ctx context.Context, lang i18n.Language) (*assistant.Conversation, error)
}

// chatEvent - сообщение сервера в WebSocket
// type: history, chunk, done, error
type chatEvent struct {
	Type     string               `json:"type"`
	Content  string               `json:"content,omitempty"`
	Message  *domain.ChatMessage  `json:"message,omitempty"`
	Messages []domain.ChatMessage `json:"messages,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// chatRequest - сообщение клиента в WebSocket
type chatRequest struct {
	Message string `json:"message"`
}

// AssistantHandler - чат с ИИ-ассистентом по WebSocket
type AssistantHandler struct {
	chats    ChatStarter
	upgrader websocket.Upgrader
	logger   logger.Logger
}

// NewAssistantHandler создает новый handler
// Origin проверяется по тому же списку, что и CORS
func NewAssistantHandler(chats ChatStarter, allowedOrigins []string, logger logger.Logger) *AssistantHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return &AssistantHandler{
		chats: chats,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
		logger: logger,
	}
}

// Chat открывает WebSocket чат
// GET /api/v1/assistant/chat
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	if !h.chats.Online() {
		respondError(w, http.StatusServiceUnavailable, "AI assistant is not available")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err,
		})
		return
	}
	defer conn.Close()
	conn.SetReadLimit(chatMaxMessage)

	ctx := r.Context()
	conv, err := h.chats.StartChat(ctx, middleware.GetLanguage(ctx))
	if err != nil {
		h.logger.Error("Failed to start chat", map[string]interface{}{
			"user_id": claims.UserID,
			"error":   err,
		})
		_ = h.write(conn, chatEvent{Type: "error", Error: assistant.ChatFallback})
		return
	}

	if err := h.write(conn, chatEvent{Type: "history", Messages: conv.Messages()}); err != nil {
		return
	}

	h.logger.Info("Assistant chat opened", map[string]interface{}{
		"user_id": claims.UserID,
	})

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("Assistant chat read failed", map[string]interface{}{
					"user_id": claims.UserID,
					"error":   err,
				})
			}
			return
		}

		var writeErr error
		reply, err := conv.Send(ctx, req.Message, func(partial string) {
			if writeErr == nil {
				writeErr = h.write(conn, chatEvent{Type: "chunk", Content: partial})
			}
		})
		if err != nil {
			if errors.Is(err, domain.ErrEmptyMessage) {
				writeErr = h.write(conn, chatEvent{Type: "error", Error: err.Error()})
			} else {
				return
			}
		} else if writeErr == nil {
			writeErr = h.write(conn, chatEvent{Type: "done", Message: &reply})
		}

		if writeErr != nil {
			return
		}
	}
}

func (h *AssistantHandler) write(conn *websocket.Conn, event chatEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(chatWriteTimeout))
	return conn.WriteJSON(event)
}
