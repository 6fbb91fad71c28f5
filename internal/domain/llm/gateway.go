// Package llm implements the gateway between authenticated users and the
// external completion API, persisting every question/answer pair.
package llm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/Dmitry2004126/ai-assistant/internal/config"
	"github.com/Dmitry2004126/ai-assistant/internal/domain/message"
	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

// MockAnswer is the canned response returned in mock mode.
const MockAnswer = "This is a mock response, the completion API was not called."

// Service answers user questions.
type Service interface {
	Ask(ctx context.Context, usr *user.User, question string, mockMode bool) (string, error)
}

// TxRunner runs fn inside one database transaction; returning an error rolls
// every staged write back.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CompletionClient is the slice of the OpenAI client the gateway uses.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Gateway forwards questions to an OpenAI-compatible completion API and
// persists both sides of the exchange. With no API key configured it always
// answers in mock mode.
type Gateway struct {
	client      CompletionClient
	model       string
	mockLatency time.Duration
	messages    message.Repository
	tx          TxRunner
	log         zerolog.Logger
}

var _ Service = (*Gateway)(nil)

func NewGateway(cfg *config.Config, messages message.Repository, tx TxRunner, log zerolog.Logger) *Gateway {
	var client CompletionClient
	if cfg.OpenRouterKey != "" {
		clientConfig := openai.DefaultConfig(cfg.OpenRouterKey)
		clientConfig.BaseURL = cfg.OpenRouterBaseURL
		client = openai.NewClientWithConfig(clientConfig)
	}
	return &Gateway{
		client:      client,
		model:       cfg.CompletionModel,
		mockLatency: cfg.MockLatency,
		messages:    messages,
		tx:          tx,
		log:         log,
	}
}

// Ask answers one question. In mock mode (explicit flag, or no API key
// configured) it waits the simulated latency and returns the canned answer
// without touching persistence. Otherwise the question row, the completion
// call and the answer row share one transaction: an upstream failure leaves
// no orphaned question behind.
func (g *Gateway) Ask(ctx context.Context, usr *user.User, question string, mockMode bool) (string, error) {
	if mockMode || g.client == nil {
		timer := time.NewTimer(g.mockLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
		return MockAnswer, nil
	}

	var answer string
	err := g.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := g.messages.Create(ctx, &message.Message{
			Text:       question,
			IsQuestion: true,
			UserID:     usr.ID,
		}); err != nil {
			return err
		}

		resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: question},
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return errors.New("completion returned no choices")
		}
		answer = resp.Choices[0].Message.Content

		return g.messages.Create(ctx, &message.Message{
			Text:       answer,
			IsQuestion: false,
			UserID:     usr.ID,
		})
	})
	if err != nil {
		g.log.Error().Err(err).Uint("user_id", usr.ID).Msg("completion request failed")
		return "", asUpstreamError(err)
	}

	return answer, nil
}

// asUpstreamError flattens any failure of the exchange into the uniform
// error shape: the upstream's HTTP status when one exists, 500 otherwise,
// detail carrying only the stringified cause.
func asUpstreamError(err error) *apperrors.AppError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperrors.Upstream(apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apperrors.Upstream(reqErr.HTTPStatusCode, err)
	}

	return apperrors.Upstream(0, err)
}
