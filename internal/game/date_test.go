package game

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		year      int
		wantMonth time.Month
		wantDay   int
		wantErr   bool
	}{
		{
			name:      "plain date",
			text:      "Thursday, Mar 30",
			year:      2023,
			wantMonth: time.March,
			wantDay:   30,
		},
		{
			name:      "doubleheader game one",
			text:      "Monday, Apr 3 (1)",
			year:      2023,
			wantMonth: time.April,
			wantDay:   3,
		},
		{
			name:      "doubleheader game two",
			text:      "Saturday, Jul 1 (2)",
			year:      2023,
			wantMonth: time.July,
			wantDay:   1,
		},
		{
			name:      "surrounding whitespace",
			text:      " Sunday, Oct 1 ",
			year:      2019,
			wantMonth: time.October,
			wantDay:   1,
		},
		{
			name:    "not a date",
			text:    "Gm#",
			year:    2023,
			wantErr: true,
		},
		{
			name:    "empty cell",
			text:    "",
			year:    2023,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.text, tt.year)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.text, err)
			}

			want := time.Date(tt.year, tt.wantMonth, tt.wantDay, 0, 0, 0, 0, time.UTC)
			if !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, want)
			}
		})
	}
}
