package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/i18n"
	ai "github.com/frontandrew/drivesure/internal/infrastructure/assistant"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
)

// Ответы, которые получает пользователь при сбое модели
const (
	ChatFallback     = "Sorry, I encountered an error. Please try again."
	BriefingFallback = "Could not generate AI briefing at this time. Please try again later."
)

const briefingPrompt = `Based on the following real-time traffic data for Lagos, provide a concise and helpful summary for a driver in markdown format. Highlight the most congested routes to avoid, and suggest potential alternative routes if applicable. Keep it brief and easy to read.

Current Traffic Data:
%s
`

// Service - ИИ-ассистент: чат по ПДД Лагоса и сводка о пробках
type Service struct {
	client ai.Client
	logger logger.Logger
}

// NewService создает новый экземпляр AssistantService
// client = nil означает офлайн-режим: все операции возвращают ErrAssistantOffline
func NewService(client ai.Client, logger logger.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Online проверяет, доступен ли ассистент
func (s *Service) Online() bool {
	return s.client != nil
}

// StartChat открывает новый разговор с приветствием на языке lang
func (s *Service) StartChat(ctx context.Context, lang i18n.Language) (*Conversation, error) {
	if s.client == nil {
		return nil, domain.ErrAssistantOffline
	}

	session, err := s.client.NewChat(ctx, nil)
	if err != nil {
		s.logger.Error("Failed to start chat", map[string]interface{}{
			"error": err,
		})
		return nil, fmt.Errorf("failed to start chat: %w", err)
	}

	return &Conversation{
		session: session,
		logger:  s.logger,
		messages: []domain.ChatMessage{
			{Role: domain.ChatRoleModel, Content: i18n.T(lang, "aiAssistantWelcome")},
		},
	}, nil
}

// TrafficBriefing просит модель кратко описать дорожную обстановку
// Ошибка модели не возвращается: вместо ответа приходит BriefingFallback
func (s *Service) TrafficBriefing(ctx context.Context, reports []domain.TrafficReport) (string, error) {
	if s.client == nil {
		return "", domain.ErrAssistantOffline
	}
	if len(reports) == 0 {
		return "", domain.ErrNoTrafficReports
	}

	prompt, err := BriefingPrompt(reports)
	if err != nil {
		return "", err
	}

	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Failed to generate traffic briefing", map[string]interface{}{
			"error": err,
		})
		return BriefingFallback, nil
	}
	return text, nil
}

// BriefingPrompt строит запрос со сводкой в виде JSON с отступами
func BriefingPrompt(reports []domain.TrafficReport) (string, error) {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode traffic reports: %w", err)
	}
	return fmt.Sprintf(briefingPrompt, data), nil
}

// Conversation - разговор с ассистентом
// Сообщения обрабатываются по одному: следующее ждет окончания ответа на предыдущее
type Conversation struct {
	mu       sync.Mutex
	session  ai.ChatSession
	logger   logger.Logger
	messages []domain.ChatMessage
}

// Messages возвращает копию истории разговора
func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send отправляет сообщение и стримит ответ
// onChunk получает накопленный текст ответа после каждого фрагмента
// При сбое посреди ответа весь ответ заменяется на ChatFallback
func (c *Conversation) Send(ctx context.Context, text string, onChunk func(reply string)) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, domain.ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: text})

	var reply strings.Builder
	for chunk, err := range c.session.SendStream(ctx, text) {
		if err != nil {
			c.logger.Error("Assistant stream failed", map[string]interface{}{
				"error": err,
			})
			reply.Reset()
			reply.WriteString(ChatFallback)
			if onChunk != nil {
				onChunk(reply.String())
			}
			break
		}
		reply.WriteString(chunk)
		if onChunk != nil {
			onChunk(reply.String())
		}
	}

	answer := domain.ChatMessage{Role: domain.ChatRoleModel, Content: reply.String()}
	c.messages = append(c.messages, answer)
	return answer, nil
}
