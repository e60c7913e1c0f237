package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []float64
	}{
		{"", nil},
		{" \t\r\n,", nil},
		{"0 0 24 24", []float64{0, 0, 24, 24}},
		{"1.5.5", []float64{1.5, 0.5}},
		{"1-2+3", []float64{1, -2, 3}},
		{"1e2 1e-2 1.5E2", []float64{100, 0.01, 150}},
		{"-.5,.5", []float64{-0.5, 0.5}},
		{"3e1.5", []float64{30, 0.5}}, // exponents are integers, the dot starts a new number
	}
	for _, test := range tests {
		got, err := Numbers(test.input)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expected, got, test.input)
	}
}

func TestNumbersErrors(t *testing.T) {
	for _, input := range []string{
		"abc",
		"1 2 x",
		"1e",
		"+",
		"..5",
	} {
		_, err := Numbers(input)
		require.ErrorIs(t, err, ErrBadNumber, input)
	}
}

func TestReadCommand(t *testing.T) {
	sc := scanner{data: "M0,0 L10,10 20,20"}

	cmd, implicit, ok := sc.readCommand(0)
	require.True(t, ok)
	require.False(t, implicit)
	require.Equal(t, byte('M'), cmd)
	_, err := sc.readNumber()
	require.NoError(t, err)
	_, err = sc.readNumber()
	require.NoError(t, err)

	cmd, implicit, ok = sc.readCommand('M')
	require.True(t, ok)
	require.False(t, implicit)
	require.Equal(t, byte('L'), cmd)
	_, err = sc.readNumber()
	require.NoError(t, err)
	_, err = sc.readNumber()
	require.NoError(t, err)

	// a bare number repeats the previous command
	cmd, implicit, ok = sc.readCommand('L')
	require.True(t, ok)
	require.True(t, implicit)
	require.Equal(t, byte('L'), cmd)
	_, err = sc.readNumber()
	require.NoError(t, err)
	_, err = sc.readNumber()
	require.NoError(t, err)

	_, _, ok = sc.readCommand('L')
	require.False(t, ok)
}
