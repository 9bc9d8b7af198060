package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"veracity/internal/evidence/providers"
)

// LLMID names the chat-model backend.
const LLMID = "llm"

const llmSystemPrompt = `You are a JSON generator. Output only a JSON object and nothing else.`

const llmUserPrompt = `Decide whether the following news text is fake or real.
Treat the task as an entailment judgement for the hypothesis template %q
with the candidate labels "fake" and "real".
Reply with exactly this JSON shape, scores summing to 1:
{"labels": ["fake", "real"], "scores": [<probability fake>, <probability real>]}

Text:
%s`

// ChatGenerator is the slice of an eino chat model the LLM backend needs.
type ChatGenerator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// LLM scores text by prompting an OpenAI-compatible chat model.
type LLM struct {
	chat       ChatGenerator
	hypothesis string
	retry      providers.RetryPolicy
}

// NewLLM connects to the chat model described by cfg.
func NewLLM(ctx context.Context, cfg Config) (*LLM, error) {
	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return NewLLMWithGenerator(chat, cfg), nil
}

// NewLLMWithGenerator wraps an existing chat model.
func NewLLMWithGenerator(chat ChatGenerator, cfg Config) *LLM {
	return &LLM{chat: chat, hypothesis: cfg.HypothesisTemplate, retry: cfg.Retry}
}

func (l *LLM) ID() string { return LLMID }

// FakeProbability prompts the model and reads the "fake" score from its reply.
func (l *LLM) FakeProbability(ctx context.Context, text string) (float64, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: llmSystemPrompt},
		{Role: schema.User, Content: fmt.Sprintf(llmUserPrompt, l.hypothesis, text)},
	}

	var score float64
	err := l.retry.Do(ctx, func(ctx context.Context) error {
		resp, err := l.chat.Generate(ctx, messages)
		if err != nil {
			return classifyLLMError(err)
		}
		if resp == nil {
			return providers.NewProviderError(providers.ErrorBadData, LLMID, "empty reply", nil)
		}

		var out zeroShotOutput
		if err := json.Unmarshal([]byte(stripCodeFence(resp.Content)), &out); err != nil {
			return providers.NewProviderError(providers.ErrorBadData, LLMID, "reply is not JSON", err)
		}
		score, err = ParseScores(LLMID, out.Labels, out.Scores)
		return err
	})
	return score, err
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// classifyLLMError maps chat-model failures onto the provider taxonomy. The
// openai client only surfaces status codes inside error text.
func classifyLLMError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "too many requests"):
		return providers.NewProviderError(providers.ErrorRateLimited, LLMID, "rate limited", err)
	case strings.Contains(msg, "401") || strings.Contains(msg, "403"):
		return providers.NewProviderError(providers.ErrorAuthentication, LLMID, "rejected credentials", err)
	default:
		return providers.FromTransport(LLMID, err)
	}
}
