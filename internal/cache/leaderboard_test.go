package cache

import (
	"testing"
	"time"
)

func TestNewLeaderboardCacheRequiresAddr(t *testing.T) {
	if _, err := NewLeaderboardCache("  ", "", 0, time.Minute); err == nil {
		t.Fatal("expected error for empty address")
	}
}
