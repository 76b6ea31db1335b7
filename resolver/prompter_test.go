package resolver

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/filter"
)

func TestGetFiltersRepromptsUntilValid(t *testing.T) {
	input := strings.Join([]string{
		"boston",
		"Washington",
		"weekly",
		"both",
		"july",
		"May",
		"9",
		"7",
	}, "\n") + "\n"
	output := &bytes.Buffer{}

	prompter := NewPrompter(NewResolver(cities), strings.NewReader(input), output)
	resolved, err := prompter.GetFilters()
	require.NoError(t, err)

	assert.Equal(t, filter.NewFilter("washington", "may", "saturday"), resolved)
	assert.Equal(t, 2, strings.Count(output.String(), "Would you like to see data for Chicago, New York City or Washington?"))
	assert.Equal(t, 2, strings.Count(output.String(), "Which month?"))
	assert.Equal(t, 2, strings.Count(output.String(), "Which day?"))
}

func TestGetFiltersWithoutTimeFilter(t *testing.T) {
	prompter := NewPrompter(NewResolver(cities), strings.NewReader("chicago\nnone\n"), io.Discard)

	resolved, err := prompter.GetFilters()
	require.NoError(t, err)
	assert.Equal(t, filter.NoFilter("chicago"), resolved)
}

func TestGetFiltersEndOfInput(t *testing.T) {
	prompter := NewPrompter(NewResolver(cities), strings.NewReader("boston\n"), io.Discard)

	_, err := prompter.GetFilters()
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskYesNo(t *testing.T) {
	prompter := NewPrompter(NewResolver(cities), strings.NewReader("Yes\nno\nmaybe\n"), io.Discard)

	for _, expected := range []bool{true, false, false} {
		answer, err := prompter.AskYesNo("Would you like to restart?")
		require.NoError(t, err)
		assert.Equal(t, expected, answer)
	}

	_, err := prompter.AskYesNo("Would you like to restart?")
	assert.ErrorIs(t, err, io.EOF)
}
