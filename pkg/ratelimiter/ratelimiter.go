// Package ratelimiter implements a token bucket used to cap outbound platform requests.
package ratelimiter

import (
	"sync"
	"time"
)

type RateLimiter interface {
	Allow() bool
	Wait()
}

type TokenBucket struct {
	capacity   int64
	tokens     int64
	refillRate int64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity, refillRate int64) *TokenBucket {
	if capacity <= 0 {
		capacity = 1
	}
	if refillRate <= 0 {
		refillRate = 1
	}

	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available.
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	refill := int64(elapsed.Seconds()) * tb.refillRate
	if refill > 0 {
		tb.tokens = min64(tb.capacity, tb.tokens+refill)
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Wait blocks until a token becomes available.
func (tb *TokenBucket) Wait() {
	interval := time.Second / time.Duration(tb.refillRate)
	if interval < 100*time.Millisecond {
		interval = 100 * time.Millisecond
	}

	for !tb.Allow() {
		time.Sleep(interval)
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
