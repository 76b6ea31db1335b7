package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/dataset"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/filter"
	"bikeshare/statistics/factory"
	statsErrors "bikeshare/statistics/factory/stat_type/errors"
)

const (
	clientType = "client"
	separator  = "----------------------------------------"
)

// IPrompter asks the user for the filters and for yes/no confirmations
type IPrompter interface {
	GetFilters() (filter.Filter, error)
	AskYesNo(question string) (bool, error)
}

// ILoader loads the filtered set of a city
type ILoader interface {
	Load(dataFilter filter.Filter) (*dataset.FilteredSet, error)
}

type Client struct {
	pageSize    int
	prompter    IPrompter
	loader      ILoader
	calculators []factory.IStatsCalculator
	publisher   communication.IPublisher
	writer      io.Writer
}

func NewClient(pageSize int, prompter IPrompter, loader ILoader, calculators []factory.IStatsCalculator, publisher communication.IPublisher, writer io.Writer) *Client {
	return &Client{
		pageSize:    pageSize,
		prompter:    prompter,
		loader:      loader,
		calculators: calculators,
		publisher:   publisher,
		writer:      writer,
	}
}

func (c *Client) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", clientType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", clientType, method, message)
}

// Run repeats analysis cycles until the user does not want to restart or the input ends
func (c *Client) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		dataFilter, err := c.prompter.GetFilters()
		if err != nil {
			return ignoreEOF(err)
		}

		err = c.RunCycle(ctx, dataFilter)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}

		restart, err := c.prompter.AskYesNo("\nWould you like to restart?")
		if err != nil {
			return ignoreEOF(err)
		}
		if !restart {
			return nil
		}
	}
}

// RunCycle loads the trips that match dataFilter, shows every statistic and then
// offers to show the raw trips. A dataset that cannot be loaded ends the cycle
// without results, the user can still restart.
func (c *Client) RunCycle(ctx context.Context, dataFilter filter.Filter) error {
	filteredSet, err := c.loader.Load(dataFilter)
	if err != nil {
		log.Error(c.getLogMessage("RunCycle", "error loading "+dataFilter.City, err))
		c.println(fmt.Sprintf("Sorry, the %s data could not be loaded: %s", dataFilter.City, err.Error()))
		return nil
	}

	if filteredSet.IsEmpty() {
		c.println(fmt.Sprintf("There are no trips that match the filters (%s)", dataFilter))
		return nil
	}

	reports := make([]*statsreport.StatsReport, 0, len(c.calculators))
	for _, calculator := range c.calculators {
		report, err := calculator.Run(filteredSet)
		if err != nil {
			if errors.Is(err, statsErrors.ErrEmptyFilteredSet) {
				continue
			}
			return err
		}
		c.printReport(report)
		log.Debug(c.getLogMessage("RunCycle", fmt.Sprintf("%s report computed over %v trips", report.GetType(), report.GetMetadata().Trips), nil))
		reports = append(reports, report)
	}

	err = c.publisher.PublishReports(ctx, dataFilter, reports)
	if err != nil {
		log.Warn(c.getLogMessage("RunCycle", "reports could not be published", err))
	}

	return c.showTrips(filteredSet)
}

// showTrips prints pageSize trips each time the user answers yes
func (c *Client) showTrips(filteredSet *dataset.FilteredSet) error {
	for offset := 0; offset < filteredSet.Len(); offset += c.pageSize {
		more, err := c.prompter.AskYesNo("\nWould you like to view individual trip data?")
		if err != nil || !more {
			return err
		}

		for _, tripData := range filteredSet.Page(offset, c.pageSize) {
			c.println(tripData.String())
		}
	}

	c.println("There are no more trips to show")
	return nil
}

func (c *Client) printReport(report *statsreport.StatsReport) {
	var sb strings.Builder
	sb.WriteString("\n" + report.Title + "\n\n")
	for _, line := range report.Lines {
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nThis took %v seconds.\n", report.Elapsed.Seconds()))
	sb.WriteString(separator)
	c.println(sb.String())
}

func (c *Client) println(message string) {
	_, _ = fmt.Fprintln(c.writer, message)
}

// shutdownOnSignal waits for a signal, cancels ctx and releases the publisher before exiting.
// closePublisher must be safe to call more than once, main also calls it on a normal exit.
func shutdownOnSignal(signals <-chan os.Signal, cancel context.CancelFunc, closePublisher func() error, exit func(int)) {
	sig := <-signals
	log.Infof("[component: %s] %s received, bye!", clientType, sig)
	cancel()

	err := closePublisher()
	if err != nil {
		log.Errorf("[component: %s][status: error] closing publisher: %s", clientType, err.Error())
	}
	exit(0)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
