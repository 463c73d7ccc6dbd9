package eventloop

import (
	"context"

	"go.uber.org/zap"
)

// Provider owns the lazy singleton Handle. Nothing is constructed until
// the first GetOrCreate call; callers that never need the loop never pay
// for it, and teardown of a never-created loop is a no-op.
//
// The provider is deliberately not safe for concurrent use. The main
// operation is single-threaded at the logical level (one cooperative
// flow), so the first caller is the single writer and every later caller
// only reads the established handle.
type Provider struct {
	logger    *zap.Logger
	interrupt context.Context
	handle    *Handle
}

// NewProvider creates a Provider bound to the bridge's interrupt context.
func NewProvider(interrupt context.Context, logger *zap.Logger) *Provider {
	return &Provider{
		logger:    logger,
		interrupt: interrupt,
	}
}

// GetOrCreate returns the shared Handle, constructing it on first call.
func (p *Provider) GetOrCreate() *Handle {
	if p.handle == nil {
		p.logger.Debug("creating shared event loop")
		p.handle = New(p.interrupt, p.logger)
	}
	return p.handle
}

// Current returns the Handle if one was ever created, or nil.
func (p *Provider) Current() *Handle {
	return p.handle
}
