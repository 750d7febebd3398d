package utils

import (
	"errors"
	"testing"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 3, BaseDelay: 0, Logger: NewNopLogger()}

	calls := 0
	err := r.Do("flaky", func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestRetryWrapsLastError(t *testing.T) {
	sentinel := errors.New("connection refused")
	r := &RetryConfig{MaxAttempts: 2, BaseDelay: 0, Logger: NewNopLogger()}

	calls := 0
	err := r.Do("ping", func() error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}

func TestRetryRunsOnceWithZeroAttempts(t *testing.T) {
	r := &RetryConfig{}

	calls := 0
	_ = r.Do("once", func() error {
		calls++
		return errors.New("boom")
	})
	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}
