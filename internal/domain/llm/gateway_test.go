package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/Dmitry2004126/ai-assistant/internal/config"
	"github.com/Dmitry2004126/ai-assistant/internal/domain/message"
	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

type recordingRepo struct {
	created   []*message.Message
	createErr error
}

func (r *recordingRepo) Create(_ context.Context, msg *message.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	msg.ID = uint(len(r.created) + 1)
	r.created = append(r.created, msg)
	return nil
}

func (r *recordingRepo) Latest(context.Context, int) ([]*message.Message, error) {
	return nil, nil
}

func (r *recordingRepo) LatestOrFail(context.Context, int) ([]*message.Message, error) {
	return nil, nil
}

type fakeRunner struct {
	committed  bool
	rolledBack bool
}

func (f *fakeRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	f.committed = true
	return nil
}

type fakeClient struct {
	answer string
	err    error
	calls  int
}

func (f *fakeClient) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.answer}},
		},
	}, nil
}

func newTestGateway(client CompletionClient, repo *recordingRepo, runner *fakeRunner) *Gateway {
	return &Gateway{
		client:      client,
		model:       "test-model",
		mockLatency: 20 * time.Millisecond,
		messages:    repo,
		tx:          runner,
		log:         zerolog.Nop(),
	}
}

func testUser() *user.User {
	return &user.User{ID: 7, Email: "u@example.com", IsActive: true}
}

func TestAskMockModeSkipsPersistence(t *testing.T) {
	repo := &recordingRepo{}
	runner := &fakeRunner{}
	gateway := newTestGateway(&fakeClient{answer: "real"}, repo, runner)

	start := time.Now()
	answer, err := gateway.Ask(context.Background(), testUser(), "hi", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != MockAnswer {
		t.Fatalf("expected canned answer, got %q", answer)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected simulated latency, finished in %v", elapsed)
	}
	if len(repo.created) != 0 || runner.committed {
		t.Fatalf("mock mode must not touch persistence")
	}
}

func TestAskWithoutAPIKeyFallsBackToMock(t *testing.T) {
	cfg := &config.Config{CompletionModel: "m", MockLatency: time.Millisecond}
	repo := &recordingRepo{}
	gateway := NewGateway(cfg, repo, &fakeRunner{}, zerolog.Nop())

	answer, err := gateway.Ask(context.Background(), testUser(), "hi", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != MockAnswer {
		t.Fatalf("expected canned answer without API key, got %q", answer)
	}
	if len(repo.created) != 0 {
		t.Fatalf("mock fallback must not persist")
	}
}

func TestAskMockModeHonorsCancellation(t *testing.T) {
	gateway := newTestGateway(&fakeClient{}, &recordingRepo{}, &fakeRunner{})
	gateway.mockLatency = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gateway.Ask(ctx, testUser(), "hi", true); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAskPersistsQuestionThenAnswer(t *testing.T) {
	repo := &recordingRepo{}
	runner := &fakeRunner{}
	client := &fakeClient{answer: "the answer"}
	gateway := newTestGateway(client, repo, runner)

	answer, err := gateway.Ask(context.Background(), testUser(), "the question", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "the answer" {
		t.Fatalf("expected upstream answer, got %q", answer)
	}
	if client.calls != 1 {
		t.Fatalf("expected one completion call, got %d", client.calls)
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected two writes, got %d", len(repo.created))
	}
	q, a := repo.created[0], repo.created[1]
	if !q.IsQuestion || q.Text != "the question" || q.UserID != 7 {
		t.Fatalf("unexpected question row: %+v", q)
	}
	if a.IsQuestion || a.Text != "the answer" || a.UserID != 7 {
		t.Fatalf("unexpected answer row: %+v", a)
	}
	if !runner.committed {
		t.Fatalf("expected the transaction to commit")
	}
}

func TestAskUpstreamFailureRollsBack(t *testing.T) {
	repo := &recordingRepo{}
	runner := &fakeRunner{}
	client := &fakeClient{err: &openai.APIError{HTTPStatusCode: 429, Message: "rate limit exceeded"}}
	gateway := newTestGateway(client, repo, runner)

	_, err := gateway.Ask(context.Background(), testUser(), "q", false)
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr := apperrors.Get(err)
	if appErr == nil {
		t.Fatalf("expected an AppError, got %T", err)
	}
	if appErr.Status() != 429 {
		t.Fatalf("expected upstream status 429, got %d", appErr.Status())
	}
	if runner.committed || !runner.rolledBack {
		t.Fatalf("expected rollback, commit=%v rollback=%v", runner.committed, runner.rolledBack)
	}
	if len(repo.created) != 1 {
		t.Fatalf("only the question should have been staged, got %d writes", len(repo.created))
	}
}

func TestAskFailureWithoutStatusDefaultsTo500(t *testing.T) {
	client := &fakeClient{err: errors.New("connection reset")}
	gateway := newTestGateway(client, &recordingRepo{}, &fakeRunner{})

	_, err := gateway.Ask(context.Background(), testUser(), "q", false)
	appErr := apperrors.Get(err)
	if appErr == nil || appErr.Status() != 500 {
		t.Fatalf("expected 500 AppError, got %v", err)
	}
}

func TestAskPersistenceFailureIsUniform(t *testing.T) {
	repo := &recordingRepo{createErr: errors.New("insert failed")}
	runner := &fakeRunner{}
	gateway := newTestGateway(&fakeClient{answer: "a"}, repo, runner)

	_, err := gateway.Ask(context.Background(), testUser(), "q", false)
	appErr := apperrors.Get(err)
	if appErr == nil || appErr.Status() != 500 {
		t.Fatalf("expected 500 AppError, got %v", err)
	}
	if runner.committed {
		t.Fatalf("expected no commit on persistence failure")
	}
}
