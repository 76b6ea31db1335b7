package resolver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	yes = "yes"
	no  = "no"
)

// Prompter asks the user for the filters through a console. Every question is repeated
// until the Resolver accepts the answer.
type Prompter struct {
	resolver *Resolver
	scanner  *bufio.Scanner
	writer   io.Writer
}

func NewPrompter(resolver *Resolver, reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		resolver: resolver,
		scanner:  bufio.NewScanner(reader),
		writer:   writer,
	}
}

// GetFilters asks for a city, the filter mode and then the month and/or the day.
// io.EOF is returned if the input ends before all the answers were given.
func (p *Prompter) GetFilters() (filter.Filter, error) {
	p.println("Hello! Let's explore some US bikeshare data!")

	cityRequest := fmt.Sprintf("Would you like to see data for %s?", p.citiesPrompt())
	city, err := askUntilValid(p, cityRequest, p.resolver.ResolveCity)
	if err != nil {
		return filter.Filter{}, err
	}

	modeRequest := `Would you like to filter data by month, day, both or not at all? Type "none" for no time filter.`
	mode, err := askUntilValid(p, modeRequest, p.resolver.ResolveFilterMode)
	if err != nil {
		return filter.Filter{}, err
	}

	month, day := filter.All, filter.All
	if mode.WithMonth() {
		monthRequest := "Which month? January, February, March, April, May, June :"
		month, err = askUntilValid(p, monthRequest, p.resolver.ResolveMonth)
		if err != nil {
			return filter.Filter{}, err
		}
	}

	if mode.WithDay() {
		dayRequest := "Which day? Please type your response as an integer (eg.. 1=Sunday, 7=Saturday, 0=all) :"
		day, err = askUntilValid(p, dayRequest, p.resolver.ResolveDay)
		if err != nil {
			return filter.Filter{}, err
		}
	}

	p.println(strings.Repeat("-", 40))
	return p.resolver.Validate(filter.NewFilter(city, month, day))
}

// AskYesNo returns true if the user answers yes. Any other answer is a no.
func (p *Prompter) AskYesNo(question string) (bool, error) {
	answer, err := p.ask(fmt.Sprintf("%s Enter %s or %s.", question, yes, no))
	if err != nil {
		return false, err
	}
	return utils.Normalize(answer) == yes, nil
}

func askUntilValid[T any](p *Prompter, question string, resolve func(string) (T, error)) (T, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := resolve(answer)
		if err == nil {
			return value, nil
		}
		log.Debugf("[component: prompter][status: retry] %s", err.Error())
	}
}

func (p *Prompter) ask(question string) (string, error) {
	p.println(question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *Prompter) println(message string) {
	_, _ = fmt.Fprintln(p.writer, message)
}

// citiesPrompt returns the cities ready to be shown, e.g "Chicago, New York City or Washington"
func (p *Prompter) citiesPrompt() string {
	cities := p.resolver.GetCities()
	titled := make([]string, 0, len(cities))
	for _, city := range cities {
		titled = append(titled, utils.Title(city))
	}

	if len(titled) == 1 {
		return titled[0]
	}
	return strings.Join(titled[:len(titled)-1], ", ") + " or " + titled[len(titled)-1]
}
