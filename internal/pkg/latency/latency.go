// Package latency имитирует сетевые задержки мобильного клиента.
//
// Каждый вызов доменного слоя проходит через Simulator, чтобы поведение
// API совпадало с тем, к которому привыкли клиенты (ответ через 0.3-1.2 с).
package latency

import (
	"context"
	"time"
)

// Задержки отдельных операций
const (
	Default     = 500 * time.Millisecond
	Duplicate   = 300 * time.Millisecond
	Booking     = 1000 * time.Millisecond
	Traffic     = 800 * time.Millisecond
	FinePayment = 1200 * time.Millisecond
)

// Simulator откладывает ответ на заданное время, умноженное на scale
type Simulator struct {
	scale float64
}

// New создает Simulator
// scale = 0 отключает задержки (тесты, LATENCY_SCALE=0)
func New(scale float64) *Simulator {
	if scale < 0 {
		scale = 0
	}
	return &Simulator{scale: scale}
}

// Disabled возвращает Simulator без задержек
func Disabled() *Simulator {
	return &Simulator{}
}

// Wait блокируется на d*scale или до отмены контекста
func (s *Simulator) Wait(ctx context.Context, d time.Duration) error {
	if s == nil || s.scale == 0 || d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(float64(d) * s.scale))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Resolve возвращает value после задержки
// При отмене контекста возвращает нулевое значение и ошибку контекста
func Resolve[T any](ctx context.Context, s *Simulator, value T, d time.Duration) (T, error) {
	if err := s.Wait(ctx, d); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
