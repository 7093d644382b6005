package mongopipe

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// PlanCache holds compiled plans keyed by their fingerprint. The two-queue
// policy keeps frequently reused pipelines resident while one-off compiles
// age out quickly.
type PlanCache struct {
	cache *lru.TwoQueueCache[uint64, *Plan]
}

// NewPlanCache returns a cache holding up to size plans.
func NewPlanCache(size int) (*PlanCache, error) {
	cache, err := lru.New2Q[uint64, *Plan](size)
	if err != nil {
		return nil, err
	}
	return &PlanCache{cache: cache}, nil
}

// Get returns the cached plan for a fingerprint.
func (c *PlanCache) Get(key uint64) (plan *Plan, fromCache bool) {
	plan, fromCache = c.cache.Get(key)
	return
}

// Set stores a plan under its fingerprint.
func (c *PlanCache) Set(key uint64, plan *Plan) {
	c.cache.Add(key, plan)
}

// Len returns the number of cached plans.
func (c *PlanCache) Len() int {
	return c.cache.Len()
}
