package payments

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultApprovePercent is the share of structurally valid payments approved.
const DefaultApprovePercent = 80

// DefaultDelay simulates the round trip to an external acquirer.
const DefaultDelay = 2 * time.Second

// Decider decides whether a structurally valid payment is approved.
type Decider func(ctx context.Context, p *Payment) bool

// WeightedDecider approves with the given percentage. A nil rng uses the
// global source. Safe for concurrent use.
func WeightedDecider(rng *rand.Rand, approvePercent int) Decider {
	var mu sync.Mutex
	return func(context.Context, *Payment) bool {
		if rng == nil {
			return rand.IntN(100) < approvePercent
		}
		mu.Lock()
		defer mu.Unlock()
		return rng.IntN(100) < approvePercent
	}
}

// Always returns a Decider with a fixed outcome.
func Always(approve bool) Decider {
	return func(context.Context, *Payment) bool { return approve }
}

// Processor validates payments and simulates the external decision.
type Processor struct {
	decide Decider
	delay  time.Duration
	now    func() time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithDecider replaces the weighted 80/20 decider.
func WithDecider(d Decider) Option {
	return func(p *Processor) {
		p.decide = d
	}
}

// WithDelay sets the artificial processing delay.
func WithDelay(d time.Duration) Option {
	return func(p *Processor) {
		p.delay = d
	}
}

// WithClock sets the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

// NewProcessor creates a processor with an 80/20 decider and a 2s delay by default.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		decide: WeightedDecider(nil, DefaultApprovePercent),
		delay:  DefaultDelay,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process validates the payment and settles its status.
//
// A structurally invalid payload declines the payment without consulting the
// decider and returns a *ValidationError. If ctx is done during the delay the
// payment stays pending and ctx.Err() is returned.
func (pr *Processor) Process(ctx context.Context, p *Payment) error {
	if p.Status() != StatusPending {
		return ErrStatusFinal
	}

	if err := p.Details.Validate(pr.now()); err != nil {
		if settleErr := p.settle(StatusDeclined); settleErr != nil {
			return errors.Join(err, settleErr)
		}
		return err
	}

	if pr.delay > 0 {
		timer := time.NewTimer(pr.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if pr.decide(ctx, p) {
		return p.settle(StatusApproved)
	}
	return p.settle(StatusDeclined)
}
