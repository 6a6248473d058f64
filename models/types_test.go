// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"testing"
	"time"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"future question", now.Add(30 * 24 * time.Hour), false},
		{"one second into the future", now.Add(time.Second), false},
		{"published right now", now, true},
		{"within the last day", now.Add(-(23*time.Hour + 59*time.Minute + 59*time.Second)), true},
		{"exactly one day old", now.Add(-24 * time.Hour), true},
		{"one second past the window", now.Add(-(24*time.Hour + time.Second)), false},
		{"much older", now.Add(-30 * 24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{QuestionText: "Does the window hold?", PubDate: tt.pubDate}
			if got := q.WasPublishedRecentlyAt(now); got != tt.want {
				t.Errorf("WasPublishedRecentlyAt(%v) = %v, want %v", tt.pubDate, got, tt.want)
			}
		})
	}
}

func TestWasPublishedRecentlyWallClock(t *testing.T) {
	fresh := Question{QuestionText: "fresh", PubDate: time.Now().Add(-time.Minute)}
	if !fresh.WasPublishedRecently() {
		t.Error("Expected a minute-old question to be recent")
	}

	future := Question{QuestionText: "future", PubDate: time.Now().Add(time.Hour)}
	if future.WasPublishedRecently() {
		t.Error("Expected a future question not to be recent")
	}
}
