package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ptrvv/ArenaBooker/internal/reconciler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReconciler_Tick_ReleasesArenas(t *testing.T) {
	repairer := mocks.NewMockLinkageRepairer(t)
	log := newTestLogger(t)

	r := New(repairer, 50*time.Millisecond, log)

	repairer.EXPECT().Reconcile(mock.Anything).Return([]string{"a1"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(repairer.Calls), 1)
}

func TestReconciler_Tick_HandlesError(t *testing.T) {
	repairer := mocks.NewMockLinkageRepairer(t)
	log := newTestLogger(t)

	r := New(repairer, 50*time.Millisecond, log)

	repairer.EXPECT().Reconcile(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(repairer.Calls), 1)
}

func TestReconciler_StopsOnContextCancel(t *testing.T) {
	repairer := mocks.NewMockLinkageRepairer(t)
	log := newTestLogger(t)

	r := New(repairer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop on context cancel")
	}
}
