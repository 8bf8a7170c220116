package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HalisahaBookingService/internal/usecase/expire_reservations"
)

type countingUseCase struct {
	runs int32
	resp *expire_reservations.Response
	err  error
}

func (u *countingUseCase) Execute(ctx context.Context) (*expire_reservations.Response, error) {
	atomic.AddInt32(&u.runs, 1)
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type recordingMetrics struct {
	rejected int32
	runs     int32
}

func (m *recordingMetrics) AddSweeperRejected(count int) {
	atomic.AddInt32(&m.rejected, int32(count))
}

func (m *recordingMetrics) ObserveSweeperRun(err error) {
	atomic.AddInt32(&m.runs, 1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Тест 1: первый прогон выполняется сразу при старте
func TestSweeper_RunsImmediatelyOnStart(t *testing.T) {
	uc := &countingUseCase{resp: &expire_reservations.Response{RejectedCount: 0}}
	s := New(time.Hour, uc, nil, noopLogger{})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&uc.runs) >= 1
	}, time.Second, 10*time.Millisecond)
}

// Тест 2: прогоны повторяются по тикеру
func TestSweeper_TicksRepeatedly(t *testing.T) {
	uc := &countingUseCase{resp: &expire_reservations.Response{RejectedCount: 1}}
	metrics := &recordingMetrics{}
	s := New(20*time.Millisecond, uc, metrics, noopLogger{})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&uc.runs) >= 3
	}, time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&metrics.rejected), int32(3))
}

// Тест 3: Stop останавливает цикл и безопасен к повторному вызову
func TestSweeper_StopIsIdempotent(t *testing.T) {
	uc := &countingUseCase{resp: &expire_reservations.Response{RejectedCount: 0}}
	s := New(10*time.Millisecond, uc, nil, noopLogger{})

	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)

	s.Stop()
	runsAfterStop := atomic.LoadInt32(&uc.runs)
	s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, runsAfterStop, atomic.LoadInt32(&uc.runs))
}

// Тест 4: ошибка прогона не останавливает цикл
func TestSweeper_KeepsRunningAfterError(t *testing.T) {
	uc := &countingUseCase{err: errors.New("db down")}
	metrics := &recordingMetrics{}
	s := New(20*time.Millisecond, uc, metrics, noopLogger{})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&uc.runs) >= 2
	}, time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&metrics.runs), int32(2))
}

// Тест 5: отмена контекста останавливает цикл
func TestSweeper_ContextCancelStops(t *testing.T) {
	uc := &countingUseCase{resp: &expire_reservations.Response{RejectedCount: 0}}
	s := New(10*time.Millisecond, uc, nil, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	runsAfterCancel := atomic.LoadInt32(&uc.runs)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, runsAfterCancel, atomic.LoadInt32(&uc.runs))
}
