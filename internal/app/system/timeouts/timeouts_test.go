package timeouts_test

import (
	"testing"
	"time"

	"github.com/babyfiction/storehub/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()

	if timeouts.Ping() != timeouts.DefaultPing {
		t.Errorf("Ping: got %v, want %v", timeouts.Ping(), timeouts.DefaultPing)
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short: got %v, want %v", timeouts.Short(), timeouts.DefaultShort)
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v, want %v", timeouts.Medium(), timeouts.DefaultMedium)
	}
}

func TestConfigure_PartialOverride(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Medium: 30 * time.Second})

	if timeouts.Medium() != 30*time.Second {
		t.Errorf("Medium: got %v, want 30s", timeouts.Medium())
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short changed by unrelated override: %v", timeouts.Short())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_MEDIUM", "not-a-duration")

	if n := timeouts.ConfigureFromEnv(); n != 1 {
		t.Errorf("applied: got %d, want 1", n)
	}
	if timeouts.Short() != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", timeouts.Short())
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium overridden by unparseable value: %v", timeouts.Medium())
	}
}
