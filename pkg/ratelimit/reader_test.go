package ratelimit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestNewLimiter(t *testing.T) {
	if NewLimiter(0) != nil {
		t.Error("NewLimiter(0) should return nil, meaning unlimited")
	}
	if NewLimiter(-100) != nil {
		t.Error("NewLimiter(-100) should return nil, meaning unlimited")
	}
	if NewLimiter(1024) == nil {
		t.Error("NewLimiter(1024) should return a limiter")
	}
}

func TestNewReaderNilLimiterPassthrough(t *testing.T) {
	src := strings.NewReader("payload")
	if r := NewReader(context.Background(), src, nil); r != io.Reader(src) {
		t.Error("a nil limiter should return the source reader unchanged")
	}
}

func TestReaderDeliversAllBytes(t *testing.T) {
	payload := bytes.Repeat([]byte("wp"), 64*1024)
	r := NewReader(context.Background(), bytes.NewReader(payload), NewLimiter(1<<30))

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("read %d bytes, want %d identical bytes", len(got), len(payload))
	}
}

func TestReaderThrottles(t *testing.T) {
	// burst covers the first 64KB, the second read must wait for refill
	payload := make([]byte, minBurst+32*1024)
	limiter := NewLimiter(minBurst)
	r := NewReader(context.Background(), bytes.NewReader(payload), limiter)

	start := time.Now()
	if _, err := io.ReadAll(r); err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("transfer beyond the burst finished in %v, expected throttling", elapsed)
	}
}

func TestReaderHonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReader(ctx, strings.NewReader("payload"), NewLimiter(1024))
	if _, err := r.Read(make([]byte, 4)); !errors.Is(err, context.Canceled) {
		t.Errorf("Read() error = %v, want context.Canceled", err)
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestNewReadCloser(t *testing.T) {
	t.Run("NilLimiterPassthrough", func(t *testing.T) {
		src := &closeTracker{Reader: strings.NewReader("payload")}
		if rc := NewReadCloser(context.Background(), src, nil); rc != io.ReadCloser(src) {
			t.Error("a nil limiter should return the source unchanged")
		}
	})

	t.Run("CloseReachesSource", func(t *testing.T) {
		src := &closeTracker{Reader: strings.NewReader("payload")}
		rc := NewReadCloser(context.Background(), src, NewLimiter(1<<20))

		if _, err := io.ReadAll(rc); err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if !src.closed {
			t.Error("Close() should close the wrapped source")
		}
	})
}
