package mocks

import (
	"context"
	"portfolio/infras/otel"
)

type otelImpl struct{}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns an Otel that records nothing, for unit tests.
func NewOtel() otel.Otel {
	return &otelImpl{}
}
