package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// countingWorker counts Run calls and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// returns at once without workers
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

func TestSessionJanitor_SweepsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mock.NewMockDocumentIndexService(ctrl)

	var sweeps atomic.Int32
	index.EXPECT().EvictIdle(gomock.Any(), 30*time.Minute).DoAndReturn(
		func(context.Context, time.Duration) (int, error) {
			if sweeps.Add(1) == 1 {
				return 0, errors.New("storage unavailable")
			}
			return 1, nil
		}).MinTimes(2)

	j := NewSessionJanitor(index, config.Server{SweepInterval: 5 * time.Millisecond, SessionTTL: 30 * time.Minute}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeps.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestNewSessionJanitor_Defaults(t *testing.T) {
	j := NewSessionJanitor(nil, config.Server{}, logger.Nop())

	assert.Equal(t, config.DefaultSweepInterval, j.interval)
	assert.Equal(t, config.DefaultSessionTTL, j.ttl)
}
