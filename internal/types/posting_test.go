package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInternshipPosting_DeadlineTime(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		wantOK   bool
		want     time.Time
	}{
		{"date only", "2025-03-31", true, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2025-03-31T10:00:00Z", true, time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)},
		{"local datetime", "2025-03-31T10:00:00", true, time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)},
		{"empty", "", false, time.Time{}},
		{"garbage", "next tuesday", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := InternshipPosting{Deadline: tt.deadline}
			got, ok := p.DeadlineTime()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestInternshipPosting_IsOpen(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&InternshipPosting{Deadline: "2025-02-01"}).IsOpen(now))
	assert.False(t, (&InternshipPosting{Deadline: "2025-01-01"}).IsOpen(now))
	assert.False(t, (&InternshipPosting{Deadline: "2025-01-15T12:00:00Z"}).IsOpen(now), "deadline equal to now is closed")
	assert.False(t, (&InternshipPosting{Deadline: "soon"}).IsOpen(now), "unparseable deadline fails closed")
}

func TestPostingLocation_Coordinates(t *testing.T) {
	lat, lon := 28.61, 77.20

	var nilLoc *PostingLocation
	_, ok := nilLoc.Coordinates()
	assert.False(t, ok)

	_, ok = (&PostingLocation{District: "Patna", State: "Bihar"}).Coordinates()
	assert.False(t, ok)

	_, ok = (&PostingLocation{Lat: &lat}).Coordinates()
	assert.False(t, ok)

	c, ok := (&PostingLocation{Lat: &lat, Lon: &lon}).Coordinates()
	assert.True(t, ok)
	assert.Equal(t, Coordinates{Lat: lat, Lon: lon}, c)
}
