package stats

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	requests     atomic.Int64
	relaySuccess atomic.Int64
	relayFailure atomic.Int64
	startedAt    time.Time
}

func NewCollector() *Collector {
	return &Collector{startedAt: time.Now()}
}

func (c *Collector) IncrementRequests() {
	c.requests.Add(1)
}

func (c *Collector) IncrementRelaySuccess() {
	c.relaySuccess.Add(1)
}

func (c *Collector) IncrementRelayFailure() {
	c.relayFailure.Add(1)
}

func (c *Collector) Snapshot() (requests, relaySuccess, relayFailure int64, uptime time.Duration) {
	return c.requests.Load(), c.relaySuccess.Load(), c.relayFailure.Load(), time.Since(c.startedAt)
}
