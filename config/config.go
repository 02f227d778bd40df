package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Stock move intake mode: "sync" (direct) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers                 []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaStockMovesTopic         string   `env:"KAFKA_STOCK_MOVES_TOPIC" envDefault:"stock.moves"`
	KafkaStockMovesDLQTopic      string   `env:"KAFKA_STOCK_MOVES_DLQ_TOPIC" envDefault:"stock.moves.dlq"`
	KafkaStockMovesConsumerGroup string   `env:"KAFKA_STOCK_MOVES_CONSUMER_GROUP" envDefault:"pos-availability-moves"`

	// OpenSearch availability snapshot sink; disabled when no URLs are set.
	OpensearchUrls              []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexAvailability string   `env:"OPENSEARCH_INDEX_AVAILABILITY" envDefault:"pos-availability-snapshots"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
