package retry_test

import (
	"errors"
	"testing"
	"time"

	"tweetbrief/internal/resilience/retry"
)

// fakeSleep records requested delays instead of blocking.
type fakeSleep struct {
	delays []time.Duration
}

func (f *fakeSleep) sleep(d time.Duration) {
	f.delays = append(f.delays, d)
}

func testConfig(s *fakeSleep) retry.Config {
	cfg := retry.SummarizerConfig()
	cfg.Sleep = s.sleep
	return cfg
}

func TestWithFixedDelay_SucceedsFirstAttempt(t *testing.T) {
	s := &fakeSleep{}
	calls := 0

	err := retry.WithFixedDelay(testConfig(s), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("WithFixedDelay err=%v", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
	if len(s.delays) != 0 {
		t.Fatalf("slept %d times, want 0", len(s.delays))
	}
}

func TestWithFixedDelay_SucceedsAfterFailures(t *testing.T) {
	s := &fakeSleep{}
	calls := 0

	err := retry.WithFixedDelay(testConfig(s), func() error {
		calls++
		if calls <= 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithFixedDelay err=%v", err)
	}
	if calls != 4 {
		t.Fatalf("calls=%d, want 4", calls)
	}

	// Three failures mean three pauses of exactly 8s each, no backoff.
	if len(s.delays) != 3 {
		t.Fatalf("slept %d times, want 3", len(s.delays))
	}
	var total time.Duration
	for _, d := range s.delays {
		if d != 8*time.Second {
			t.Fatalf("delay=%v, want 8s", d)
		}
		total += d
	}
	if total < 24*time.Second {
		t.Fatalf("total wait %v, want at least 24s", total)
	}
}

func TestWithFixedDelay_ExhaustsAttempts(t *testing.T) {
	s := &fakeSleep{}
	calls := 0
	underlying := errors.New("service overloaded")

	err := retry.WithFixedDelay(testConfig(s), func() error {
		calls++
		return underlying
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 6 {
		t.Fatalf("calls=%d, want exactly 6", calls)
	}
	// No pause after the final attempt.
	if len(s.delays) != 5 {
		t.Fatalf("slept %d times, want 5", len(s.delays))
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("err=%v does not wrap the last failure", err)
	}
}

func TestWithFixedDelay_DefaultSleepUsedWhenNil(t *testing.T) {
	cfg := retry.Config{MaxAttempts: 1, Delay: time.Nanosecond}

	// A single successful attempt never sleeps, so a nil Sleep is fine.
	if err := retry.WithFixedDelay(cfg, func() error { return nil }); err != nil {
		t.Fatalf("WithFixedDelay err=%v", err)
	}
}
