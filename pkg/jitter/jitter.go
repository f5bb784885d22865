// Package jitter предоставляет утилиты для повторов с экспоненциальной задержкой и случайным разбросом,
// чтобы одновременные клиенты не били во внешний API синхронно.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	jitter := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(jitter)
}

// ExponentialBackoff вычисляет экспоненциальное отступление с джиттером.
// attempt — номер текущей попытки повтора (нумерация с нуля).
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}

// Policy описывает параметры повторов.
type Policy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
	Factor   float64
}

// Retry вызывает fn до Attempts раз, пока fn возвращает ошибку, для которой retryable == true.
// Между попытками ждёт ExponentialBackoff, прерывается по ctx.
// onRetry (может быть nil) вызывается перед каждым ожиданием.
func Retry(
	ctx context.Context,
	p Policy,
	fn func(ctx context.Context) error,
	retryable func(err error) bool,
	onRetry func(attempt int, wait time.Duration, err error),
) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if attempt == attempts-1 || (retryable != nil && !retryable(err)) {
			return err
		}

		wait := ExponentialBackoff(p.Base, p.Max, attempt, p.Factor)
		if onRetry != nil {
			onRetry(attempt+1, wait, err)
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
