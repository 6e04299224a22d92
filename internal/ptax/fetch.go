package ptax

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/biz-days/pkg/dateutil"
)

// Fetch is a one-shot background lookup of the previous day's USD/BRL buy rate.
// It resolves exactly once, to a rate or to unavailable.
type Fetch struct {
	date time.Time

	mu      sync.RWMutex
	loading bool
	rate    float64
	ok      bool
	done    chan struct{}
}

// Start launches the lookup for the calendar day before now. There is no
// retry and no cancellation beyond ctx; an abandoned Fetch resolves unobserved.
func Start(ctx context.Context, source RateSource, now time.Time, logger *zap.Logger) *Fetch {
	f := &Fetch{
		date:    dateutil.PreviousDay(now),
		loading: true,
		done:    make(chan struct{}),
	}

	go f.run(ctx, source, f.date, logger)

	return f
}

func (f *Fetch) run(ctx context.Context, source RateSource, date time.Time, logger *zap.Logger) {
	var (
		rate float64
		err  error
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrUnavailable, r)
		}
		if err != nil {
			logger.Warn("Failed to fetch USD/BRL rate",
				zap.String("date", dateutil.FormatMDY(date)),
				zap.Error(err))
		}
		f.resolve(rate, err == nil)
	}()

	rate, err = source.FetchBuyRate(ctx, date)
}

func (f *Fetch) resolve(rate float64, ok bool) {
	f.mu.Lock()
	f.rate = rate
	f.ok = ok
	f.loading = false
	f.mu.Unlock()

	close(f.done)
}

// Date returns the quote date being looked up
func (f *Fetch) Date() time.Time {
	return f.date
}

// Loading reports whether the lookup is still in flight
func (f *Fetch) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

// Rate returns the fetched rate; ok is false while loading or when unavailable
func (f *Fetch) Rate() (float64, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.rate, f.ok
}

// Done is closed once the lookup has resolved
func (f *Fetch) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the lookup resolves or ctx ends
func (f *Fetch) Wait(ctx context.Context) (float64, bool) {
	select {
	case <-f.done:
		return f.Rate()
	case <-ctx.Done():
		return 0, false
	}
}
