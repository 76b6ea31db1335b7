package main

import (
	"context"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	"bikeshare/client/config"
	"bikeshare/communication"
	"bikeshare/dataset"
	"bikeshare/resolver"
	"bikeshare/statistics/factory"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	clientConfig, err := config.LoadClientConfig()
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := InitLogger(clientConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	catalogs, err := dataset.LoadStationCatalogs(&clientConfig.Dataset)
	if err != nil {
		log.Fatalf("[component: %s][status: error] error loading station catalogs: %s", clientType, err.Error())
	}

	calculators, err := factory.NewStatsCalculators(factory.StatsTypes, catalogs)
	if err != nil {
		log.Fatalf("[component: %s][status: error] error creating calculators: %s", clientType, err.Error())
	}

	publisher, err := communication.NewPublisher(clientConfig.Publisher)
	if err != nil {
		log.Fatalf("[component: %s][status: error] error creating publisher: %s", clientType, err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closePublisher := sync.OnceValue(publisher.Close)
	go shutdownOnSignal(utils.GetSignalChannel(), cancel, closePublisher, os.Exit)

	prompter := resolver.NewPrompter(resolver.NewResolver(clientConfig.GetCities()), os.Stdin, os.Stdout)
	client := NewClient(
		clientConfig.PageSize,
		prompter,
		dataset.NewLoader(&clientConfig.Dataset),
		calculators,
		publisher,
		os.Stdout,
	)

	err = client.Run(ctx)
	if err != nil {
		log.Errorf("[component: %s][status: error] %s", clientType, err.Error())
	}

	err = closePublisher()
	if err != nil {
		log.Errorf("[component: %s][status: error] %s", clientType, err.Error())
	}
	log.Debugf("[component: %s] finish main.go", clientType)
}
