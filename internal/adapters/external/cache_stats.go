package external

import (
	"context"
	"sync"
	"time"

	"citycast.app/internal/ports"
)

// cacheStats counts hits and misses and forwards them to the metrics
// collector when one is configured
type cacheStats struct {
	mutex   sync.RWMutex
	hits    int64
	misses  int64
	metrics ports.MetricsCollector
}

func (s *cacheStats) recordHit(ctx context.Context) {
	s.mutex.Lock()
	s.hits++
	s.mutex.Unlock()
	if s.metrics != nil {
		s.metrics.RecordCacheHit(ctx)
	}
}

func (s *cacheStats) recordMiss(ctx context.Context) {
	s.mutex.Lock()
	s.misses++
	s.mutex.Unlock()
	if s.metrics != nil {
		s.metrics.RecordCacheMiss(ctx)
	}
}

func (s *cacheStats) snapshot() ports.CacheStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := s.hits + s.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(s.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        s.hits,
		Misses:      s.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
