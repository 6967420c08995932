package ratelimit

import (
	"context"
	"io"
	"sync"
	"time"
)

// minBurst keeps transfers smooth even for very low limits
const minBurst = 64 * 1024

// Limiter throttles byte transfers to a configured rate using a token bucket.
// A nil *Limiter disables limiting.
type Limiter struct {
	rate  int64 // bytes per second
	burst int64 // bucket capacity

	mu       sync.Mutex
	tokens   int64
	lastFill time.Time
}

// NewLimiter creates a limiter for the given bytes-per-second rate.
// Returns nil when rate is zero or negative, meaning unlimited.
func NewLimiter(bytesPerSecond int64) *Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}
	burst := bytesPerSecond
	if burst < minBurst {
		burst = minBurst
	}
	return &Limiter{
		rate:     bytesPerSecond,
		burst:    burst,
		tokens:   burst,
		lastFill: time.Now(),
	}
}

// take blocks until n tokens are available, then consumes them
func (l *Limiter) take(n int64) {
	if n > l.burst {
		n = l.burst
	}
	for {
		l.mu.Lock()
		now := time.Now()
		refill := int64(now.Sub(l.lastFill).Seconds() * float64(l.rate))
		if refill > 0 {
			l.tokens += refill
			if l.tokens > l.burst {
				l.tokens = l.burst
			}
			l.lastFill = now
		}
		if l.tokens >= n {
			l.tokens -= n
			l.mu.Unlock()
			return
		}
		deficit := n - l.tokens
		l.mu.Unlock()

		wait := time.Duration(float64(deficit) / float64(l.rate) * float64(time.Second))
		if wait < time.Millisecond {
			wait = time.Millisecond
		}
		time.Sleep(wait)
	}
}

type reader struct {
	ctx     context.Context
	src     io.Reader
	limiter *Limiter
}

// NewReader wraps r so reads respect the limiter's rate.
// A nil limiter returns r unchanged.
func NewReader(ctx context.Context, r io.Reader, limiter *Limiter) io.Reader {
	if limiter == nil {
		return r
	}
	return &reader{ctx: ctx, src: r, limiter: limiter}
}

// Read implements io.Reader
func (r *reader) Read(p []byte) (int, error) {
	select {
	case <-r.ctx.Done():
		return 0, r.ctx.Err()
	default:
	}

	chunk := int64(len(p))
	if chunk > r.limiter.burst {
		chunk = r.limiter.burst
	}
	r.limiter.take(chunk)
	return r.src.Read(p[:chunk])
}

type readCloser struct {
	io.Reader
	closer io.Closer
}

// NewReadCloser wraps rc so reads respect the limiter's rate.
// A nil limiter returns rc unchanged.
func NewReadCloser(ctx context.Context, rc io.ReadCloser, limiter *Limiter) io.ReadCloser {
	if limiter == nil {
		return rc
	}
	return &readCloser{
		Reader: NewReader(ctx, rc, limiter),
		closer: rc,
	}
}

// Close implements io.Closer
func (rc *readCloser) Close() error {
	return rc.closer.Close()
}
