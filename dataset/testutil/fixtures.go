// Package testutil contains small city datasets shared by the tests of the statistics calculators
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bikeshare/dataset/config"
)

var (
	fullHeader  = []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"}
	shortHeader = []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
)

// ChicagoRecords dataset with gender and birth year columns
func ChicagoRecords() [][]string {
	return [][]string{
		fullHeader,
		{"0", "2017-01-01 09:07:57", "2017-01-01 09:20:53", "776", "A", "B", "Subscriber", "Male", "1990.0"},
		{"1", "2017-01-02 09:30:00", "2017-01-02 09:31:00", "60", "A", "C", "Subscriber", "Female", "1985.0"},
		{"2", "2017-02-05 17:00:00", "2017-02-05 18:00:01", "3601", "B", "B", "Customer", "", ""},
		{"3", "2017-03-06 08:15:00", "2017-03-06 08:17:00", "120", "A", "B", "Subscriber", "Male", "1990.0"},
		{"4", "2017-03-10 17:45:00", "2017-03-10 17:50:00", "300", "C", "A", "Subscriber", "Male", "2000.0"},
		{"5", "2017-06-23 17:09:32", "2017-06-24 18:09:32", "90000", "B", "A", "Customer", "Female", ""},
	}
}

// NewYorkCityRecords dataset with gender and birth year columns
func NewYorkCityRecords() [][]string {
	return [][]string{
		fullHeader,
		{"0", "2017-01-01 00:07:57", "2017-01-01 00:24:37", "1000", "P", "Q", "Subscriber", "Male", "1992.0"},
		{"1", "2017-06-30 23:59:59", "2017-07-01 00:08:19", "500", "Q", "P", "Customer", "", ""},
	}
}

// WashingtonRecords dataset without gender and birth year columns
func WashingtonRecords() [][]string {
	return [][]string{
		shortHeader,
		{"0", "2017-04-03 07:00:00", "2017-04-03 07:06:40", "400.5", "X", "Y", "Subscriber"},
		{"1", "2017-04-03 07:30:00", "2017-04-03 07:33:20", "200", "X", "Y", "Customer"},
		{"2", "2017-05-06 12:00:00", "2017-05-06 12:01:40", "100", "Y", "X", "Subscriber"},
	}
}

// WriteCSV writes records to dir/filename and returns the path of the file
func WriteCSV(t *testing.T, dir string, filename string, records [][]string) string {
	t.Helper()

	path := filepath.Join(dir, filename)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll(records))
	return path
}

// NewDatasetConfig writes the three city datasets to a temporary directory and returns a config pointing to them
func NewDatasetConfig(t *testing.T) *config.DatasetConfig {
	t.Helper()

	datasetConfig := config.DefaultDatasetConfig()
	datasetConfig.DataDir = t.TempDir()
	WriteCSV(t, datasetConfig.DataDir, datasetConfig.CityData["chicago"], ChicagoRecords())
	WriteCSV(t, datasetConfig.DataDir, datasetConfig.CityData["new york city"], NewYorkCityRecords())
	WriteCSV(t, datasetConfig.DataDir, datasetConfig.CityData["washington"], WashingtonRecords())
	return &datasetConfig
}
