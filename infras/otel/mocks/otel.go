package mocks

import (
	"context"
	"hotelier/infras/otel"
	"sync"
)

// Otel is a tracing double that keeps every scope it opened, in order.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := NewScope(spanName)
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the scopes opened so far.
func (o *Otel) Scopes() []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*Scope(nil), o.scopes...)
}

// Find returns the first scope opened with spanName.
func (o *Otel) Find(spanName string) *Scope {
	for _, scope := range o.Scopes() {
		if scope.Name == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() *Otel {
	return &Otel{}
}
