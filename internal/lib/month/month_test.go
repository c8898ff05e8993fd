package month

import (
	"testing"
	"time"
)

func TestAdd_TableTests(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "one month mid-month",
			start:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "twelve months is one year",
			start:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			months: 12,
			want:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year boundary",
			start:  time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "end of month rolls over in leap year",
			start:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "end of month rolls over in common year",
			start:  time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "thirty first into thirty day month",
			start:  time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Add(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("Add(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}
