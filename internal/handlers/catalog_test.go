package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10", 1000, true},
		{"12.34", 1234, true},
		{"12,3", 1230, true},
		{"0.5", 50, true},
		{".99", 99, true},
		{"0", 0, true},
		{"1.234", 123, true}, // extra decimals truncated
		{" 7.00 ", 700, true},
		{"", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"1.x", 0, false},
	}
	for _, tc := range cases {
		got, err := parsePriceCents(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}
