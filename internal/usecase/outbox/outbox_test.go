package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

// stubRepository drives one worker iteration and cancels the context
// once the batch is marked, so the worker loop terminates on its own.
type stubRepository struct {
	mu       sync.Mutex
	messages []repository.OutboxData
	getErr   error

	success []string
	failed  []string

	cancel context.CancelFunc
}

func (s *stubRepository) SendMessage(context.Context, string, repository.OutboxKind, []byte) error {
	return nil
}

func (s *stubRepository) GetMessages(context.Context, int, time.Duration) ([]repository.OutboxData, error) {
	if s.getErr != nil {
		s.cancel()
		return nil, s.getErr
	}
	return s.messages, nil
}

func (s *stubRepository) MarkAs(_ context.Context, keys []string, status repository.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch status {
	case repository.Success:
		s.success = append(s.success, keys...)
	case repository.Created:
		s.failed = append(s.failed, keys...)
		s.cancel()
	default:
	}
	return nil
}

type stubTransactor struct{}

func (stubTransactor) WithTx(ctx context.Context, function func(ctx context.Context) error) error {
	return function(ctx)
}

func initOutboxTest(t *testing.T, repo *stubRepository, handler GlobalHandler) (*config.Config, *outboxImpl) {
	t.Helper()

	logger, err := zap.NewProduction()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Outbox.Enabled = true

	return cfg, New(logger, repo, handler, cfg, stubTransactor{})
}

func Test_outboxImpl_worker(t *testing.T) {
	t.Parallel()

	handled := make([]string, 0)
	var mu sync.Mutex

	globalHandler := func(kind repository.OutboxKind) (KindHandler, error) {
		switch kind {
		case repository.OutboxKindBookSaved:
			return func(_ context.Context, data []byte) error {
				mu.Lock()
				defer mu.Unlock()
				handled = append(handled, string(data))
				return nil
			}, nil
		case repository.OutboxKindBookRemoved:
			return func(context.Context, []byte) error {
				return errInternal
			}, nil
		default:
			return nil, errInternal
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	repo := &stubRepository{
		cancel: cancel,
		messages: []repository.OutboxData{
			{IdempotencyKey: "saved-key", Kind: repository.OutboxKindBookSaved, RawData: []byte("payload")},
			{IdempotencyKey: "removed-key", Kind: repository.OutboxKindBookRemoved},
			{IdempotencyKey: "unknown-key", Kind: repository.OutboxKindUndefined},
		},
	}

	_, o := initOutboxTest(t, repo, globalHandler)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go o.worker(ctx, wg, len(repo.messages), time.Nanosecond, time.Second)
	wg.Wait()

	require.Contains(t, repo.success, "saved-key")
	require.Contains(t, repo.failed, "removed-key")
	require.Contains(t, repo.failed, "unknown-key")
	require.Contains(t, handled, "payload")
}

func Test_outboxImpl_worker_GetMessagesError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	repo := &stubRepository{cancel: cancel, getErr: errInternal}

	_, o := initOutboxTest(t, repo, func(repository.OutboxKind) (KindHandler, error) {
		t.Error("handler must not run when the batch fetch fails")
		return nil, nil
	})

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go o.worker(ctx, wg, 1, time.Nanosecond, time.Second)
	wg.Wait()

	require.Empty(t, repo.success)
	require.Empty(t, repo.failed)
}

func Test_outboxImpl_worker_DisabledSkipsFetch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	repo := &stubRepository{cancel: cancel}

	cfg, o := initOutboxTest(t, repo, func(repository.OutboxKind) (KindHandler, error) {
		return nil, errInternal
	})
	cfg.Outbox.Enabled = false

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go o.worker(ctx, wg, 1, time.Nanosecond, time.Second)

	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	require.Empty(t, repo.success)
	require.Empty(t, repo.failed)
}
