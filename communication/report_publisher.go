package communication

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/filter"
)

const publisherType = "report-publisher"

// IPublisher sends the statistics reports of an analysis cycle somewhere else
type IPublisher interface {
	PublishReports(ctx context.Context, dataFilter filter.Filter, reports []*statsreport.StatsReport) error
	Close() error
}

type exchangePublisher interface {
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, contentType string) error
	Close() error
}

// reportsMessage body of the messages published by ReportPublisher
type reportsMessage struct {
	Filter  filter.Filter              `json:"filter"`
	Reports []*statsreport.StatsReport `json:"reports"`
}

// ReportPublisher publishes the reports of each cycle as a JSON message in a RabbitMQ exchange
type ReportPublisher struct {
	broker exchangePublisher
	config PublisherConfig
}

// NewPublisher returns a publisher that does nothing when publisherConfig is disabled.
// Otherwise it connects to RabbitMQ and declares the output exchange.
func NewPublisher(publisherConfig PublisherConfig) (IPublisher, error) {
	if !publisherConfig.Enabled {
		return NoopPublisher{}, nil
	}

	rabbitMQ, err := NewRabbitMQ(publisherConfig.RabbitURL)
	if err != nil {
		return nil, fmt.Errorf("[component: %s] failed to connect to RabbitMQ: %w", publisherType, err)
	}

	err = rabbitMQ.DeclareExchanges([]ExchangeDeclarationConfig{publisherConfig.Exchange})
	if err != nil {
		_ = rabbitMQ.Close()
		return nil, err
	}

	log.Infof("[component: %s][status: OK] exchange %s declared correctly!", publisherType, publisherConfig.Exchange.Name)
	return newReportPublisher(rabbitMQ, publisherConfig), nil
}

func newReportPublisher(broker exchangePublisher, publisherConfig PublisherConfig) *ReportPublisher {
	return &ReportPublisher{
		broker: broker,
		config: publisherConfig,
	}
}

// GetRoutingKey returns the routing key of the reports of a city, e.g stats.chicago or stats.new_york_city
func (rp *ReportPublisher) GetRoutingKey(city string) string {
	return fmt.Sprintf("%s.%s", rp.config.RoutingKeyPrefix, routingKeyWord(city))
}

func (rp *ReportPublisher) PublishReports(ctx context.Context, dataFilter filter.Filter, reports []*statsreport.StatsReport) error {
	message, err := json.Marshal(reportsMessage{Filter: dataFilter, Reports: reports})
	if err != nil {
		return fmt.Errorf("[component: %s] error marshaling reports: %w", publisherType, err)
	}

	if rp.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rp.config.Timeout)
		defer cancel()
	}

	routingKey := rp.GetRoutingKey(dataFilter.City)
	err = rp.broker.PublishMessageInExchange(ctx, rp.config.Exchange.Name, routingKey, message, rp.config.ContentType)
	if err != nil {
		return fmt.Errorf("[component: %s] error publishing reports with routing key %s: %w", publisherType, routingKey, err)
	}

	log.Debugf("[component: %s][status: OK] %v reports published with routing key %s", publisherType, len(reports), routingKey)
	return nil
}

func (rp *ReportPublisher) Close() error {
	return rp.broker.Close()
}

// NoopPublisher used when publishing is disabled
type NoopPublisher struct{}

func (NoopPublisher) PublishReports(context.Context, filter.Filter, []*statsreport.StatsReport) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

// routingKeyWord replaces the characters that have a meaning in topic routing keys
func routingKeyWord(word string) string {
	replaced := []rune(word)
	for idx, char := range replaced {
		if char == ' ' || char == '.' || char == '*' || char == '#' {
			replaced[idx] = '_'
		}
	}
	return string(replaced)
}
