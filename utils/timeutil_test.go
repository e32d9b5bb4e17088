package utils

import (
	"testing"
	"time"
)

func TestParseLocalDateTime(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Fatalf("failed to load zone: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		loc     *time.Location
		want    time.Time
		wantErr bool
	}{
		{
			name:  "UTC passthrough",
			input: "2024-01-10 10:00",
			loc:   time.UTC,
			want:  time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Nairobi is UTC+3",
			input: "2024-01-10 10:00",
			loc:   nairobi,
			want:  time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC),
		},
		{
			name:    "missing minutes",
			input:   "2024-01-10 10",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "2024/01/10 10:00",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "nil location",
			input:   "2024-01-10 10:00",
			loc:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalDateTime(tt.input, tt.loc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalRoundTrip(t *testing.T) {
	zones := []string{"UTC", "Africa/Nairobi", "America/New_York", "Asia/Tokyo"}

	for _, name := range zones {
		t.Run(name, func(t *testing.T) {
			loc, err := time.LoadLocation(name)
			if err != nil {
				t.Fatalf("failed to load zone: %v", err)
			}

			utc := time.Date(2024, 6, 15, 18, 42, 0, 0, time.UTC)
			local := ToLocal(utc, loc)

			back, err := ParseLocalDateTime(local.Format(LocalDateTimeLayout), loc)
			if err != nil {
				t.Fatalf("round trip parse failed: %v", err)
			}
			if !back.Equal(utc) {
				t.Errorf("round trip changed instant: got %v, want %v", back, utc)
			}
		})
	}
}

func TestLoadLocationFallback(t *testing.T) {
	loc := LoadLocation("Not/AZone")
	if loc == nil {
		t.Fatal("LoadLocation returned nil")
	}
	// Unrecognized names must not produce an error, only a default zone.
	if loc != time.UTC && loc.String() == "Not/AZone" {
		t.Errorf("unrecognized zone was not replaced: %v", loc)
	}

	if got := LoadLocation(""); got == nil {
		t.Fatal("empty zone name returned nil")
	}
}

func TestFormatLocal(t *testing.T) {
	utc := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	if got := FormatLocal(utc, time.UTC); got != "Jan 10, 2024 10:00" {
		t.Errorf("got %q", got)
	}
}
