package controller

import "time"

// Clock delivers periodic wake-ups. The loop turns each one into a Tick intent.
type Clock interface {
	C() <-chan time.Time
	Stop()
}

type tickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock returns a Clock backed by time.Ticker
func NewTickerClock(interval time.Duration) Clock {
	return &tickerClock{ticker: time.NewTicker(interval)}
}

func (t *tickerClock) C() <-chan time.Time { return t.ticker.C }

func (t *tickerClock) Stop() { t.ticker.Stop() }
