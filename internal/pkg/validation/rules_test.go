package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDateString(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2024-06-15", true},
		{"1999-01-01", true},
		{"2024-6-15", false},
		{"15-06-2024", false},
		{"2024/06/15", false},
		{"2024-06-15T00:00:00Z", false},
		{"", false},
		{"not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidDateString(tt.date))
		})
	}
}
