package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNewOrderIDFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	id := NewOrderID(now)

	if !strings.HasPrefix(id, "20250314150926") {
		t.Errorf("order id %q should start with the UTC timestamp", id)
	}
	if len(id) != 14+6 {
		t.Errorf("order id %q has length %d, want 20", id, len(id))
	}
}

func TestNewOrderIDUniqueWithinSameSecond(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID(now)
		if seen[id] {
			t.Fatalf("duplicate order id %q generated for the same instant", id)
		}
		seen[id] = true
	}
}
