package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jhoicas/cliente360-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa MessageGenerator.
var _ ports.MessageGenerator = (*OpenAIService)(nil)

// OpenAIService adaptador alternativo de MessageGenerator sobre la API de OpenAI.
// Se selecciona con AI_PROVIDER=openai; comparte el system prompt del adaptador Anthropic.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService construye el adaptador. model suele ser "gpt-4o-mini".
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateMarketingMessage redacta el mensaje con un chat completion.
func (s *OpenAIService) GenerateMarketingMessage(
	ctx context.Context,
	firstName string,
	contextHint string,
	lastPurchaseDisplay string,
) (string, error) {
	userContent := fmt.Sprintf("Cliente: %s\nContexto: %s\nÚltima compra: %s",
		firstName, contextHint, lastPurchaseDisplay)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: 512,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: marketingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	})
	if err != nil {
		return "", fmt.Errorf("AI: OpenAI chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
