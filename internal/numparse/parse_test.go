package numparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		s    string
		want int64
	}{
		{"123", 123},
		{"-123", -123},
		{"+42", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12a", 0},
		{"-", 0},
	}

	for _, c := range cases {
		require.Equal(c.want, ParseInt(c.s, 0, len(c.s)), "input %q", c.s)
	}
}

func TestParseIntBoundedSlice(t *testing.T) {
	require := require.New(t)

	s := "prefix123suffix"
	require.Equal(int64(123), ParseInt(s, 6, 9))
}

func TestParseFloat(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		s    string
		want float64
	}{
		{"3.14", 3.14},
		{"-2.5", -2.5},
		{"0", 0},
		{"1e3", 1000},
		{"1.5e-2", 0.015},
		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
	}

	for _, c := range cases {
		require.InDelta(c.want, ParseFloat(c.s, 0, len(c.s)), 1e-9, "input %q", c.s)
	}
}

func TestParseFloatBoundedSlice(t *testing.T) {
	require := require.New(t)

	s := "val=3.5;"
	require.InDelta(3.5, ParseFloat(s, 4, 7), 1e-9)
}

func TestParseOutOfRangeNeverPanics(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(0), ParseInt("abc", -1, 10))
	require.Equal(int64(0), ParseInt("abc", 2, 10))
	require.Equal(0.0, ParseFloat("abc", 5, 2))
}
