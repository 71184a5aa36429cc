package browser

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer caps how fast the worker issues navigations against the driven site.
// The randomized inter-card delay handles politeness between applications;
// the pacer is the hard floor underneath it.
type Pacer struct {
	lim *rate.Limiter
}

func NewPacer(perSec float64, burst int) *Pacer {
	return &Pacer{lim: rate.NewLimiter(rate.Limit(perSec), burst)}
}

func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.lim == nil {
		return nil
	}
	return p.lim.Wait(ctx)
}
