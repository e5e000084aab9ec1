package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Hour)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed)
	}

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}

func TestRateLimiterIsolatesSubjects(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("visitor-1", "confirm_booking")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow("visitor-1", "confirm_booking")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("visitor-2", "confirm_booking")
	assert.True(t, allowed)
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter()
	limiter.Allow("visitor-1", "confirm_booking")

	limiter.Cleanup(0)

	limiter.mutex.RLock()
	defer limiter.mutex.RUnlock()
	assert.Empty(t, limiter.buckets)
}
