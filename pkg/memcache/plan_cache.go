package memcache

import (
	"sync"
	"time"

	"wanderplan/internal/models/response_models"
)

// PlanCache is a read-side cache of rendered travel plans. Stored plans are
// immutable, so entries only ever expire, they never go stale.
type PlanCache struct {
	mu   sync.RWMutex
	data map[string]planEntry
}

type planEntry struct {
	plan      *response_models.TravelPlanResponse
	expiresAt time.Time
}

func NewPlanCache() *PlanCache {
	return &PlanCache{
		data: make(map[string]planEntry),
	}
}

func (c *PlanCache) Set(slug string, plan *response_models.TravelPlanResponse, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[slug] = planEntry{
		plan:      plan,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *PlanCache) Get(slug string) (*response_models.TravelPlanResponse, bool) {
	c.mu.RLock()
	e, ok := c.data[slug]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, slug) // cleanup expired
		c.mu.Unlock()
		return nil, false
	}
	return e.plan, true
}
