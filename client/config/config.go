package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	datasetConfig "bikeshare/dataset/config"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./client/config/config.yaml"
	configFilepathEnvVar  = "BIKESHARE_CONFIG"
	envPrefix             = "BIKESHARE"
)

// ClientConfig configuration of the interactive client
// + LogLevel: logrus level, e.g info or debug
// + PageSize: amount of raw trips shown each time the user asks for more
// + Dataset: location and schema of the city datasets
// + Publisher: optional publishing of the reports in RabbitMQ
type ClientConfig struct {
	LogLevel  string                        `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"required,oneof=trace debug info warning warn error fatal panic"`
	PageSize  int                           `yaml:"page_size" envconfig:"PAGE_SIZE" validate:"gt=0"`
	Dataset   datasetConfig.DatasetConfig   `yaml:"dataset" envconfig:"DATASET"`
	Publisher communication.PublisherConfig `yaml:"publisher" envconfig:"PUBLISHER"`
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		LogLevel:  "info",
		PageSize:  5,
		Dataset:   datasetConfig.DefaultDatasetConfig(),
		Publisher: communication.DefaultPublisherConfig(),
	}
}

// GetCities returns the cities that have a dataset, in alphabetical order
func (cc ClientConfig) GetCities() []string {
	cities := make([]string, 0, len(cc.Dataset.CityData))
	for city := range cc.Dataset.CityData {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// LoadClientConfig builds the config from the defaults, then the yaml file (if it exists)
// and then the BIKESHARE_* environment variables. The result is validated.
func LoadClientConfig() (ClientConfig, error) {
	configFilepath := os.Getenv(configFilepathEnvVar)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}
	return LoadClientConfigFromFile(configFilepath)
}

func LoadClientConfigFromFile(configFilepath string) (ClientConfig, error) {
	clientConfig := DefaultClientConfig()

	configFile, err := utils.GetConfigFile(configFilepath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults are enough to run
	case err != nil:
		return ClientConfig{}, err
	default:
		err = yaml.Unmarshal(configFile, &clientConfig)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("error parsing client config file: %w", err)
		}
	}

	err = envconfig.Process(envPrefix, &clientConfig)
	if err != nil {
		return ClientConfig{}, fmt.Errorf("error reading client config from environment: %w", err)
	}

	err = validator.New().Struct(clientConfig)
	if err != nil {
		return ClientConfig{}, fmt.Errorf("invalid client config: %w", err)
	}

	return clientConfig, nil
}
