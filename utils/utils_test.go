package utils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSetNoDuplicates(t *testing.T) {
	s := NewStringSet()

	assert.True(t, s.Add("s1"), "first Add should return true")
	assert.False(t, s.Add("s1"), "second Add of same value should return false")
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.Contains("s1"))
	assert.False(t, s.Contains("s2"))
}

func TestStringSetSorted(t *testing.T) {
	s := NewStringSet("India", "Brazil", "United States", "Brazil")
	assert.Equal(t, []string{"Brazil", "India", "United States"}, s.Sorted())
	assert.Empty(t, NewStringSet().Sorted())
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	r := &RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, Logger: NewLoggerTo(io.Discard)}

	err := r.Do(context.Background(), "ping", func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryGivesUp(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	r := &RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond}

	err := r.Do(context.Background(), "ping", func() error {
		calls++
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ping failed after 2 attempts")
	assert.Equal(t, 2, calls)
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour}
	err := r.Do(ctx, "ping", func() error { return errors.New("down") })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoggerDebugSwitch(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf)

	l.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.SetDebug(true).Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	l.Info("loaded %d titles", 5)
	assert.Contains(t, buf.String(), "loaded 5 titles")
}
