// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements a fixed-window request limiter keyed by
// client identity.
//
// The limiter counts requests per client within non-overlapping windows and
// resets the counter at each window boundary. Expired records are evicted
// opportunistically on every call, O(n) over recent distinct clients, with no
// background sweep.
//
// The limiter is deliberately fail-open: if its own bookkeeping fails, the
// request is admitted. Availability wins over strict quota enforcement here;
// the protected operations have their own validation.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/utils"
)

// Profile is a named rate-limiting configuration. Profiles are data, not
// code: picking a different profile never changes limiter behavior, only
// its numbers.
type Profile struct {
	// MaxRequests is the number of requests admitted per window.
	MaxRequests int

	// Window is the fixed window length.
	Window time.Duration
}

// Named profiles used across the application.
var (
	// ProfileEncryption gates the encryption and upload endpoints.
	ProfileEncryption = Profile{MaxRequests: 100, Window: 15 * time.Minute}

	// ProfileDebug gates diagnostic endpoints.
	ProfileDebug = Profile{MaxRequests: 20, Window: 5 * time.Minute}

	// ProfileGeneral gates everything else.
	ProfileGeneral = Profile{MaxRequests: 1000, Window: 15 * time.Minute}
)

// Result describes the limiter's decision for one request.
type Result struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Limit is the profile's MaxRequests, echoed for response headers.
	Limit int

	// Remaining is the quota left in the current window (0 when rejected).
	Remaining int

	// ResetTime is when the current window ends.
	ResetTime time.Time

	// RetryAfterSeconds is ceil(ResetTime-now) in seconds; meaningful only
	// for rejected requests.
	RetryAfterSeconds int
}

// Limiter is a fixed-window counter over an injectable [Store].
//
// The mutex makes the read-check-write sequence on a single key atomic, so
// two concurrent requests from the same client cannot both observe count=N
// and write N+1.
type Limiter struct {
	profile Profile
	store   Store
	logger  *logger.Logger

	mu sync.Mutex

	// now is injectable for tests.
	now func() time.Time
}

// NewLimiter constructs a [Limiter] with the given profile backed by store.
func NewLimiter(profile Profile, store Store, logger *logger.Logger) *Limiter {
	return &Limiter{
		profile: profile,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// ClientKey derives the limiter key for a request: the client IP joined with
// the first 16 hex characters of the SHA-256 of its User-Agent. Two browsers
// behind one NAT get separate quotas; a browser cannot reset its quota by
// changing only casing-irrelevant headers.
func ClientKey(ip, userAgent string) string {
	return ip + ":" + utils.SHA256Hex(userAgent)[:16]
}

// Allow records one request for key and returns the decision. Internal
// bookkeeping failures admit the request (fail-open) after logging a
// warning.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictExpired(now)

	record, found, err := l.store.Get(key)
	if err != nil {
		l.logger.Warn().Err(err).Msg("rate limit store read failed, admitting request")
		return l.failOpen(now)
	}

	if !found || now.After(record.ResetTime) {
		record = Record{Count: 1, ResetTime: now.Add(l.profile.Window)}
	} else {
		record.Count++
	}

	if err := l.store.Set(key, record); err != nil {
		l.logger.Warn().Err(err).Msg("rate limit store write failed, admitting request")
		return l.failOpen(now)
	}

	if record.Count > l.profile.MaxRequests {
		retryAfter := int(math.Ceil(record.ResetTime.Sub(now).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}

		return Result{
			Allowed:           false,
			Limit:             l.profile.MaxRequests,
			Remaining:         0,
			ResetTime:         record.ResetTime,
			RetryAfterSeconds: retryAfter,
		}
	}

	return Result{
		Allowed:   true,
		Limit:     l.profile.MaxRequests,
		Remaining: l.profile.MaxRequests - record.Count,
		ResetTime: record.ResetTime,
	}
}

// Profile returns the limiter's configuration.
func (l *Limiter) Profile() Profile {
	return l.profile
}

// evictExpired deletes every record whose window has already ended. Errors
// are logged and otherwise ignored: eviction is housekeeping, not
// enforcement.
func (l *Limiter) evictExpired(now time.Time) {
	keys, err := l.store.Keys()
	if err != nil {
		l.logger.Warn().Err(err).Msg("rate limit store scan failed, skipping eviction")
		return
	}

	for _, key := range keys {
		record, found, err := l.store.Get(key)
		if err != nil || !found {
			continue
		}
		if now.After(record.ResetTime) {
			if err := l.store.Delete(key); err != nil {
				l.logger.Warn().Err(err).Str("key", key).Msg("rate limit record eviction failed")
			}
		}
	}
}

func (l *Limiter) failOpen(now time.Time) Result {
	return Result{
		Allowed:   true,
		Limit:     l.profile.MaxRequests,
		Remaining: l.profile.MaxRequests,
		ResetTime: now.Add(l.profile.Window),
	}
}
