package utils

import (
	"testing"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{
			name:    "valid date",
			day:     "2026-09-01",
			wantErr: false,
		},
		{
			name:    "valid leap day",
			day:     "2024-02-29",
			wantErr: false,
		},
		{
			name:    "invalid format",
			day:     "09/01/2026",
			wantErr: true,
		},
		{
			name:    "missing day",
			day:     "2026-09",
			wantErr: true,
		},
		{
			name:    "empty string",
			day:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDay(tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.day, err, tt.wantErr)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  string
		n    int
		want string
	}{
		{
			name: "forward one day",
			day:  "2026-09-01",
			n:    1,
			want: "2026-09-02",
		},
		{
			name: "backward across month boundary",
			day:  "2026-09-01",
			n:    -1,
			want: "2026-08-31",
		},
		{
			name: "zero days",
			day:  "2026-09-01",
			n:    0,
			want: "2026-09-01",
		},
		{
			name: "across year boundary",
			day:  "2025-12-30",
			n:    3,
			want: "2026-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.day, tt.n)
			if err != nil {
				t.Fatalf("AddDays(%q, %d) error = %v", tt.day, tt.n, err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want string
	}{
		{
			name: "monday maps to itself",
			day:  "2026-08-31",
			want: "2026-08-31",
		},
		{
			name: "tuesday maps back one day",
			day:  "2026-09-01",
			want: "2026-08-31",
		},
		{
			name: "sunday maps back six days",
			day:  "2026-09-06",
			want: "2026-08-31",
		},
		{
			name: "week spanning month boundary",
			day:  "2026-09-02",
			want: "2026-08-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekStart(tt.day)
			if err != nil {
				t.Fatalf("WeekStart(%q) error = %v", tt.day, err)
			}
			if got != tt.want {
				t.Errorf("WeekStart(%q) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}

	if _, err := WeekStart("not-a-date"); err == nil {
		t.Error("WeekStart() should reject invalid dates")
	}
}

func TestFormatWeekRange(t *testing.T) {
	got := FormatWeekRange("2026-08-31")
	want := "Aug 31 - Sep 6, 2026"
	if got != want {
		t.Errorf("FormatWeekRange() = %q, want %q", got, want)
	}

	// Invalid input falls back to the raw string
	if got := FormatWeekRange("garbage"); got != "garbage" {
		t.Errorf("FormatWeekRange(garbage) = %q, want passthrough", got)
	}
}

func TestLastNDays(t *testing.T) {
	days, err := LastNDays("2026-09-01", 3)
	if err != nil {
		t.Fatalf("LastNDays() error = %v", err)
	}
	want := []string{"2026-08-30", "2026-08-31", "2026-09-01"}
	if len(days) != len(want) {
		t.Fatalf("LastNDays() returned %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("LastNDays()[%d] = %q, want %q", i, days[i], want[i])
		}
	}
}
