package resolver

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"

	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

// FilterMode which time filters the user wants to apply
type FilterMode string

const (
	ModeMonth FilterMode = "month"
	ModeDay   FilterMode = "day"
	ModeBoth  FilterMode = "both"
	ModeNone  FilterMode = "none"
)

var filterModes = []FilterMode{ModeMonth, ModeDay, ModeBoth, ModeNone}

// dayCodes maps the integer typed by the user to a day selector, 1=sunday ... 7=saturday
var dayCodes = map[int]string{
	0: filter.All,
	1: "sunday",
	2: "monday",
	3: "tuesday",
	4: "wednesday",
	5: "thursday",
	6: "friday",
	7: "saturday",
}

func (fm FilterMode) WithMonth() bool {
	return fm == ModeMonth || fm == ModeBoth
}

func (fm FilterMode) WithDay() bool {
	return fm == ModeDay || fm == ModeBoth
}

// Resolver turns raw user choices into a valid filter.Filter
type Resolver struct {
	cities   []string
	validate *validator.Validate
}

func NewResolver(cities []string) *Resolver {
	sortedCities := slices.Clone(cities)
	slices.Sort(sortedCities)
	return &Resolver{
		cities:   sortedCities,
		validate: validator.New(),
	}
}

// GetCities returns the known cities in alphabetical order
func (r *Resolver) GetCities() []string {
	return r.cities
}

func (r *Resolver) ResolveCity(input string) (string, error) {
	city := utils.Normalize(input)
	if !utils.ContainsString(city, r.cities) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCity, input)
	}
	return city, nil
}

func (r *Resolver) ResolveFilterMode(input string) (FilterMode, error) {
	mode := FilterMode(utils.Normalize(input))
	if !slices.Contains(filterModes, mode) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilterMode, input)
	}
	return mode, nil
}

// ResolveMonth accepts a month name between january and june
func (r *Resolver) ResolveMonth(input string) (string, error) {
	month := utils.Normalize(input)
	if !utils.ContainsString(month, filter.Months) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, input)
	}
	return month, nil
}

// ResolveDay accepts a day code (0=all, 1=sunday ... 7=saturday), a day name or "all"
func (r *Resolver) ResolveDay(input string) (string, error) {
	normalized := utils.Normalize(input)
	if code, err := strconv.Atoi(normalized); err == nil {
		day, ok := dayCodes[code]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidDay, input)
		}
		return day, nil
	}

	if normalized != filter.All && !utils.ContainsString(normalized, filter.Days) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, input)
	}
	return normalized, nil
}

// Resolve validates every choice and returns the filter to apply.
// month and day are ignored when mode does not ask for them.
func (r *Resolver) Resolve(cityInput string, modeInput string, monthInput string, dayInput string) (filter.Filter, error) {
	city, err := r.ResolveCity(cityInput)
	if err != nil {
		return filter.Filter{}, err
	}

	mode, err := r.ResolveFilterMode(modeInput)
	if err != nil {
		return filter.Filter{}, err
	}

	month, day := filter.All, filter.All
	if mode.WithMonth() {
		month, err = r.ResolveMonth(monthInput)
		if err != nil {
			return filter.Filter{}, err
		}
	}

	if mode.WithDay() {
		day, err = r.ResolveDay(dayInput)
		if err != nil {
			return filter.Filter{}, err
		}
	}

	return r.Validate(filter.NewFilter(city, month, day))
}

// Validate checks that f only has whitelisted values
func (r *Resolver) Validate(f filter.Filter) (filter.Filter, error) {
	if err := r.validate.Struct(f); err != nil {
		return filter.Filter{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	if !utils.ContainsString(f.City, r.cities) {
		return filter.Filter{}, fmt.Errorf("%w: %w: %q", ErrInvalidFilter, ErrInvalidCity, f.City)
	}
	return f, nil
}
