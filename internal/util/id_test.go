package util

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var idPattern = regexp.MustCompile(`^\d{13,}-[0-9a-z]{5}$`)

func TestNewTransactionID_Format(t *testing.T) {
	id := NewTransactionID()
	if !idPattern.MatchString(id) {
		t.Errorf("id %q does not match <millis>-<5 base36>", id)
	}

	millisStr := strings.SplitN(id, "-", 2)[0]
	millis, err := strconv.ParseInt(millisStr, 10, 64)
	if err != nil {
		t.Fatalf("parse millis: %v", err)
	}
	now := time.Now().UnixMilli()
	if millis > now || now-millis > 5_000 {
		t.Errorf("id timestamp %d too far from now %d", millis, now)
	}
}

func TestNewTransactionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTransactionID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestTodayDate(t *testing.T) {
	before := time.Now().UTC().Format("2006-01-02")
	got := TodayDate()
	after := time.Now().UTC().Format("2006-01-02")
	// before != after only when the test straddles UTC midnight
	if got != before && got != after {
		t.Errorf("TodayDate() = %q, want %q", got, before)
	}
	if _, err := time.Parse("2006-01-02", got); err != nil {
		t.Errorf("TodayDate() %q is not YYYY-MM-DD: %v", got, err)
	}
}
