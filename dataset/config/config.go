package config

// DatasetColumns contains the name of each column to analyze
type DatasetColumns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// Required returns the columns that every dataset must have
func (dc DatasetColumns) Required() []string {
	return []string{dc.StartTime, dc.Duration, dc.StartStation, dc.EndStation, dc.UserType}
}

// DatasetConfig configuration of the city datasets
// + DataDir: directory that contains the files of CityData and StationsData
// + CityData: file of each city, e.g chicago -> chicago.csv
// + StationsData: optional station catalog of each city, e.g chicago -> chicago_stations.csv
// + TimeLayout: layout of the start and end time columns
type DatasetConfig struct {
	DataDir      string            `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	CityData     map[string]string `yaml:"city_data" envconfig:"CITY_DATA" validate:"required,min=1,dive,required"`
	StationsData map[string]string `yaml:"stations_data" envconfig:"STATIONS_DATA" validate:"dive,required"`
	TimeLayout   string            `yaml:"time_layout" envconfig:"TIME_LAYOUT" validate:"required"`
	Columns      DatasetColumns    `yaml:"columns"`
}

// DefaultDatasetConfig returns the configuration of the chicago, new york city and washington datasets
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		DataDir: "./data",
		CityData: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		StationsData: map[string]string{},
		TimeLayout:   "2006-01-02 15:04:05",
		Columns: DatasetColumns{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			Duration:     "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
	}
}
