package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		ok    bool
		year  int
		month time.Month
		day   int
	}{
		{in: "2025-04-23", ok: true, year: 2025, month: time.April, day: 23},
		{in: "2025-04-23 00:00:00", ok: true, year: 2025, month: time.April, day: 23},
		{in: "2025-04-23T10:11:12", ok: true, year: 2025, month: time.April, day: 23},
		{in: "23.04.2025", ok: true, year: 2025, month: time.April, day: 23},
		{in: "3/4/2025", ok: true, year: 2025, month: time.April, day: 3},
		{in: "31.02.2025", ok: false},
		{in: "2025-13-40", ok: false},
		{in: "NaT", ok: false},
		{in: "", ok: false},
		{in: "вчера", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.year, got.Year())
				assert.Equal(t, tt.month, got.Month())
				assert.Equal(t, tt.day, got.Day())
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 4, 23, 0, 0, 0, 0, time.Local)
	b := time.Date(2025, 4, 23, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 4, 24, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
