package game

import "time"

// Clock paces the loop. Wait blocks until the next tick is due.
type Clock interface {
	Wait()
}

// TickerClock ticks at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
}

func NewTickerClock(ticksPerSecond int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(ticksPerSecond))}
}

func (c *TickerClock) Wait() {
	<-c.ticker.C
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
