package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/filter"
)

var cities = []string{"washington", "chicago", "new york city"}

func TestResolveCity(t *testing.T) {
	resolver := NewResolver(cities)

	city, err := resolver.ResolveCity("  New York City ")
	require.NoError(t, err)
	assert.Equal(t, "new york city", city)

	_, err = resolver.ResolveCity("boston")
	assert.ErrorIs(t, err, ErrInvalidCity)

	assert.Equal(t, []string{"chicago", "new york city", "washington"}, resolver.GetCities())
}

func TestResolveDay(t *testing.T) {
	resolver := NewResolver(cities)

	tests := []struct {
		input    string
		expected string
	}{
		{input: "0", expected: filter.All},
		{input: "1", expected: "sunday"},
		{input: "5", expected: "thursday"},
		{input: "6", expected: "friday"},
		{input: "7", expected: "saturday"},
		{input: "Friday", expected: "friday"},
		{input: "all", expected: filter.All},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, err := resolver.ResolveDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}

	for _, input := range []string{"8", "-1", "fri", ""} {
		_, err := resolver.ResolveDay(input)
		assert.ErrorIs(t, err, ErrInvalidDay, input)
	}
}

func TestDayCodesHaveNoCollisions(t *testing.T) {
	seen := make(map[string]int)
	for code, day := range dayCodes {
		_, duplicated := seen[day]
		assert.False(t, duplicated, "day %s mapped twice", day)
		seen[day] = code
	}
	assert.Len(t, seen, len(filter.Days)+1)
}

func TestResolve(t *testing.T) {
	resolver := NewResolver(cities)

	tests := []struct {
		name     string
		mode     string
		month    string
		day      string
		expected filter.Filter
	}{
		{name: "no filter", mode: "none", month: "march", day: "3", expected: filter.NoFilter("chicago")},
		{name: "month", mode: "month", month: "March", day: "3", expected: filter.NewFilter("chicago", "march", filter.All)},
		{name: "day", mode: "day", month: "march", day: "3", expected: filter.NewFilter("chicago", filter.All, "tuesday")},
		{name: "both", mode: "BOTH", month: "june", day: "sunday", expected: filter.NewFilter("chicago", "june", "sunday")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := resolver.Resolve("Chicago", tt.mode, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resolved)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	resolver := NewResolver(cities)

	_, err := resolver.Resolve("chicago", "week", "", "")
	assert.ErrorIs(t, err, ErrInvalidFilterMode)

	_, err = resolver.Resolve("chicago", "month", "july", "")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = resolver.Resolve("chicago", "both", "june", "9")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = resolver.Validate(filter.NewFilter("chicago", "december", filter.All))
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = resolver.Validate(filter.NoFilter("boston"))
	assert.ErrorIs(t, err, ErrInvalidCity)
}
