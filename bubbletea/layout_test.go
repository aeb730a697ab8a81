package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/dring/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestBytesPerRowFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		digits   int
		expected int
	}{
		{name: "tiny terminal", width: 10, digits: 8, expected: 1},
		{name: "exactly one byte", width: 24, digits: 8, expected: 1},
		{name: "classic 80 columns", width: 80, digits: 8, expected: 8},
		{name: "one short of 16", width: 143, digits: 8, expected: 8},
		{name: "exactly 16", width: 144, digits: 8, expected: 16},
		{name: "wide terminal caps at 32", width: 400, digits: 8, expected: 32},
		{name: "long offsets need more room", width: 80, digits: 10, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, bubbletea.BytesPerRowFor(tt.width, tt.digits))
		})
	}
}
