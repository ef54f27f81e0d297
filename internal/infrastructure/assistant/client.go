// Package assistant подключает ИИ-ассистента к Gemini API.
package assistant

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/frontandrew/drivesure/internal/domain"
	"google.golang.org/genai"
)

// SystemPrompt задает роль ассистента в чате
const SystemPrompt = "You are 'Lagos Drive-Law Assistant', an expert on Lagos State traffic laws. " +
	"Provide clear, concise answers to questions from drivers and law enforcement officers. " +
	"If possible, cite the relevant section of the law. Your tone should be helpful and authoritative. " +
	"Format your responses using markdown for readability (including lists, bolding, etc.)."

// Client - интерфейс генеративной модели
type Client interface {
	// NewChat открывает сессию чата с системным промптом и историей
	NewChat(ctx context.Context, history []domain.ChatMessage) (ChatSession, error)

	// Generate выполняет одиночный запрос и возвращает текст ответа
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatSession - сессия чата, хранящая историю на стороне клиента
type ChatSession interface {
	// SendStream отправляет сообщение и возвращает фрагменты ответа по мере генерации
	SendStream(ctx context.Context, message string) iter.Seq2[string, error]
}

// geminiClient - реализация Client поверх google.golang.org/genai
type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient создает клиент Gemini API
// timeout ограничивает одиночный запрос и каждый ответ в чате (0 - без ограничения)
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (Client, error) {
	if apiKey == "" {
		return nil, domain.ErrAssistantOffline
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &geminiClient{client: client, model: model, timeout: timeout}, nil
}

func (c *geminiClient) NewChat(ctx context.Context, history []domain.ChatMessage) (ChatSession, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == domain.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	chat, err := c.client.Chats.Create(ctx, c.model, config, contents)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	return &geminiChat{chat: chat, timeout: c.timeout}, nil
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}

// geminiChat - реализация ChatSession поверх genai.Chat
type geminiChat struct {
	chat    *genai.Chat
	timeout time.Duration
}

func (c *geminiChat) SendStream(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ctx, cancel := withTimeout(ctx, c.timeout)
		defer cancel()

		for resp, err := range c.chat.SendMessageStream(ctx, genai.Part{Text: message}) {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(resp.Text(), nil) {
				return
			}
		}
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
