package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/usecase/expire_reservations"
)

// ExpireUseCase интерфейс use case авто-отклонения просроченных броней
type ExpireUseCase interface {
	Execute(ctx context.Context) (*expire_reservations.Response, error)
}

// Metrics интерфейс метрик sweeper'а
type Metrics interface {
	AddSweeperRejected(count int)
	ObserveSweeperRun(err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper фоновый воркер, периодически запускающий авто-отклонение
// просроченных pending-броней. Первый прогон выполняется сразу при старте,
// дальше - по тикеру
type Sweeper struct {
	interval time.Duration
	usecase  ExpireUseCase
	metrics  Metrics
	logger   Logger

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// New создает новый экземпляр sweeper'а. metrics может быть nil
func New(interval time.Duration, usecase ExpireUseCase, metrics Metrics, logger Logger) *Sweeper {
	return &Sweeper{
		interval: interval,
		usecase:  usecase,
		metrics:  metrics,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start запускает фоновый цикл. Возвращает управление сразу
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop останавливает цикл и дожидается завершения текущего прогона.
// Безопасен к повторным вызовам
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	<-s.doneCh
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.doneCh)

	s.logger.Info("Sweeper: started, interval=%s", s.interval)

	// Первый прогон сразу, чтобы не ждать целый интервал после рестарта
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopCh:
			s.logger.Info("Sweeper: stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Sweeper: context cancelled, stopping")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	resp, err := s.usecase.Execute(ctx)
	if s.metrics != nil {
		s.metrics.ObserveSweeperRun(err)
	}
	if err != nil {
		s.logger.Error("Sweeper: run failed: %v", err)
		return
	}

	if resp.RejectedCount > 0 {
		s.logger.Info("Sweeper: auto-rejected %d reservation(s)", resp.RejectedCount)
		if s.metrics != nil {
			s.metrics.AddSweeperRejected(int(resp.RejectedCount))
		}
	}
}
