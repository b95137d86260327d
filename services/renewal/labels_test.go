package renewal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormaliseLabel(t *testing.T) {
	for input, expected := range map[string]string{
		"alice":      "alice",
		"Alice.eth":  "alice",
		" bob.ETH ":  "bob",
		"CAROL":      "carol",
		"nick.eth":   "nick",
		"x":          "x",
		"Mixed-Case": "mixed-case",
	} {
		label, err := NormaliseLabel(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, label, input)
	}

	for _, input := range []string{"", ".eth", "sub.alice.eth", "a.b"} {
		_, err := NormaliseLabel(input)
		require.ErrorIs(t, err, ErrInvalidLabel, input)
	}
}

func TestNormaliseLabels(t *testing.T) {
	labels, err := NormaliseLabels([]string{"Alice", "bob.eth"})
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, labels)

	_, err = NormaliseLabels([]string{"alice", "a.b"})
	require.ErrorIs(t, err, ErrInvalidLabel)
}
