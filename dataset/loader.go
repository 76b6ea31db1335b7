package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/dataset/config"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	loaderType = "dataset-loader"

	monthColumn     = "month"
	dayOfWeekColumn = "day_of_week"
	hourColumn      = "hour"
)

type Loader struct {
	config *config.DatasetConfig
}

func NewLoader(datasetConfig *config.DatasetConfig) *Loader {
	return &Loader{
		config: datasetConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// Load reads the dataset of the city of dataFilter, derives month, day of week and hour from
// the start time of each trip and keeps only the trips that match the month and day selectors.
// Any read, schema or parsing error aborts the load; no partial results are returned.
func (l *Loader) Load(dataFilter filter.Filter) (*FilteredSet, error) {
	filename, ok := l.config.CityData[dataFilter.City]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, dataFilter.City)
	}

	dataFilepath := filepath.Join(l.config.DataDir, filename)
	frame, err := readDataFrame(dataFilepath)
	if err != nil {
		log.Error(l.getLogMessage("Load", "error reading "+dataFilepath, err))
		return nil, err
	}

	filteredSet, err := l.buildFilteredSet(frame, dataFilter)
	if err != nil {
		log.Error(l.getLogMessage("Load", "invalid data in "+dataFilepath, err))
		return nil, err
	}
	return filteredSet, nil
}

// LoadRecords builds a FilteredSet from in-memory csv records. The first record must be the header.
func (l *Loader) LoadRecords(records [][]string, dataFilter filter.Filter) (*FilteredSet, error) {
	frame := dataframe.LoadRecords(records, dataframe.HasHeader(true), dataframe.DetectTypes(false))
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDataset, frame.Err)
	}
	return l.buildFilteredSet(frame, dataFilter)
}

func (l *Loader) buildFilteredSet(frame dataframe.DataFrame, dataFilter filter.Filter) (*FilteredSet, error) {
	err := l.validateSchema(frame)
	if err != nil {
		return nil, err
	}

	frame, err = l.parseColumns(frame)
	if err != nil {
		return nil, err
	}

	fullSize := frame.Nrow()
	frame = applyFilters(frame, dataFilter)
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: error filtering trips: %w", ErrReadDataset, frame.Err)
	}

	log.Debug(l.getLogMessage("buildFilteredSet", fmt.Sprintf("%s: %v trips loaded, %v trips after filters", dataFilter, fullSize, frame.Nrow()), nil))
	return newFilteredSet(frame, dataFilter, l.config.Columns, l.config.TimeLayout), nil
}

// readDataFrame reads the whole csv file. Every column is read as string, types are set later.
func readDataFrame(dataFilepath string) (dataframe.DataFrame, error) {
	dataFile, err := os.Open(dataFilepath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrReadDataset, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", dataFilepath, err.Error())
		}
	}(dataFile)

	frame := dataframe.ReadCSV(dataFile, dataframe.HasHeader(true), dataframe.DetectTypes(false))
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrReadDataset, dataFilepath, frame.Err)
	}

	return frame, nil
}

// validateSchema checks that every required column is present. Gender and birth year are optional.
func (l *Loader) validateSchema(frame dataframe.DataFrame) error {
	names := frame.Names()
	for _, column := range l.config.Columns.Required() {
		if !utils.ContainsString(column, names) {
			return fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}
	return nil
}

// parseColumns converts the duration and birth year columns to numbers and adds the derived columns
func (l *Loader) parseColumns(frame dataframe.DataFrame) (dataframe.DataFrame, error) {
	columns := l.config.Columns
	rows := frame.Nrow()

	months := make([]int, rows)
	daysOfWeek := make([]string, rows)
	hours := make([]int, rows)
	for idx, rawStartTime := range frame.Col(columns.StartTime).Records() {
		startTime, err := time.Parse(l.config.TimeLayout, rawStartTime)
		if err != nil {
			return frame, fmt.Errorf("%w: row %v: %q", ErrInvalidStartTime, idx+1, rawStartTime)
		}

		derivedFields := trip.Derive(startTime)
		months[idx] = derivedFields.Month
		daysOfWeek[idx] = derivedFields.DayOfWeek
		hours[idx] = derivedFields.Hour
	}

	durations := make([]float64, rows)
	for idx, rawDuration := range frame.Col(columns.Duration).Records() {
		duration, err := strconv.ParseFloat(rawDuration, 64)
		if err != nil || duration < 0 || math.IsNaN(duration) {
			return frame, fmt.Errorf("%w: row %v: %q", ErrInvalidDuration, idx+1, rawDuration)
		}
		durations[idx] = duration
	}

	frame = frame.Mutate(series.New(durations, series.Float, columns.Duration))

	if utils.ContainsString(columns.BirthYear, frame.Names()) {
		birthYears := make([]float64, rows)
		for idx, rawBirthYear := range frame.Col(columns.BirthYear).Records() {
			if isEmpty(rawBirthYear) {
				birthYears[idx] = math.NaN()
				continue
			}

			birthYear, err := strconv.ParseFloat(rawBirthYear, 64)
			if err != nil {
				return frame, fmt.Errorf("%w: row %v: %q", ErrInvalidBirthYear, idx+1, rawBirthYear)
			}
			birthYears[idx] = birthYear
		}
		frame = frame.Mutate(series.New(birthYears, series.Float, columns.BirthYear))
	}

	frame = frame.
		Mutate(series.New(months, series.Int, monthColumn)).
		Mutate(series.New(daysOfWeek, series.String, dayOfWeekColumn)).
		Mutate(series.New(hours, series.Int, hourColumn))

	return frame, frame.Err
}

func applyFilters(frame dataframe.DataFrame, dataFilter filter.Filter) dataframe.DataFrame {
	if dataFilter.FiltersByMonth() && frame.Nrow() > 0 {
		frame = frame.Filter(dataframe.F{
			Colname:    monthColumn,
			Comparator: series.Eq,
			Comparando: dataFilter.MonthIndex(),
		})
	}

	if dataFilter.FiltersByDay() && frame.Nrow() > 0 {
		frame = frame.Filter(dataframe.F{
			Colname:    dayOfWeekColumn,
			Comparator: series.Eq,
			Comparando: dataFilter.DayName(),
		})
	}

	return frame
}

// isEmpty returns true for blank cells and for the values gota uses to represent missing data
func isEmpty(value string) bool {
	return value == "" || value == "NaN" || value == "NA"
}
