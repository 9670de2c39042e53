// Package ratelimit implementa o contador de requisições por janela de um minuto
// compartilhado pelas escritas no datastore de destino.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultWindow é a duração da janela usada pelo datastore de destino
const DefaultWindow = time.Minute

// Window conta requisições dentro de uma janela e suspende o chamador quando o teto é atingido.
// A espera é única: após dormir até o fim da janela o chamador segue sem nova verificação,
// então o limite é consultivo quando vários escritores disputam o mesmo contador.
type Window struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    int
	resetTime   time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

type Option func(*Window)

// WithClock substitui o relógio e a espera, usado nos testes
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(w *Window) {
		w.now = now
		w.sleep = sleep
	}
}

func NewWindow(maxRequests int, window time.Duration, opts ...Option) *Window {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	if window <= 0 {
		window = DefaultWindow
	}

	w := &Window{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		sleep:       sleepContext,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.resetTime = w.now().Add(w.window)

	return w
}

// Acquire reinicia a janela se ela expirou e, se o teto já foi atingido,
// aguarda até o fim da janela corrente.
func (w *Window) Acquire(ctx context.Context) error {
	w.mu.Lock()
	now := w.now()
	if now.After(w.resetTime) {
		w.requests = 0
		w.resetTime = now.Add(w.window)
	}

	if w.requests < w.maxRequests {
		w.mu.Unlock()
		return nil
	}

	wait := w.resetTime.Sub(now)
	w.mu.Unlock()

	return w.sleep(ctx, wait)
}

// Record contabiliza uma requisição emitida
func (w *Window) Record() {
	w.mu.Lock()
	w.requests++
	w.mu.Unlock()
}

func (w *Window) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.requests
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
