package disclaimer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pruner is implemented by stores that need explicit expiry
type Pruner interface {
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// Controller decides whether a visitor sees the disclaimer and records acknowledgements
type Controller struct {
	store  Store
	logger *zap.Logger
}

// NewController builds a controller. A nil store means the cookie is the only record.
func NewController(store Store, logger *zap.Logger) *Controller {
	if store == nil {
		store = NopStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, logger: logger}
}

// State resolves the modal state for a request. flag is the client cookie value.
// A failing store read counts as a first visit.
func (c *Controller) State(ctx context.Context, flag, visitorID string) State {
	if FlagSet(flag) {
		return Hidden
	}
	if visitorID == "" {
		return Shown
	}

	seen, err := c.store.HasSeen(ctx, visitorID)
	if err != nil {
		c.logger.Warn("Disclaimer store read failed", zap.String("visitor", visitorID), zap.Error(err))
		return Shown
	}
	return Initial(seen)
}

// Acknowledge records the acknowledgement for visitorID. The caller hides the
// modal regardless of the returned error.
func (c *Controller) Acknowledge(ctx context.Context, visitorID string) error {
	if visitorID == "" {
		return nil
	}
	if err := c.store.MarkSeen(ctx, visitorID); err != nil {
		c.logger.Error("Disclaimer store write failed", zap.String("visitor", visitorID), zap.Error(err))
		return err
	}
	c.logger.Debug("Disclaimer acknowledged", zap.String("visitor", visitorID))
	return nil
}
