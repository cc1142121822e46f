package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntListAcceptsCommaSeparatedAscending(t *testing.T) {
	got, err := parseIntList("0,1,10,100,1000")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 10, 100, 1000}, got)
}

func TestParseIntListSkipsBlankFields(t *testing.T) {
	got, err := parseIntList(" 0, 1 ,,2")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestParseIntListRejectsNonInteger(t *testing.T) {
	_, err := parseIntList("0,abc")
	assert.Error(t, err)
}
