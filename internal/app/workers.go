package app

import (
	"context"

	"github.com/nhoxwy/pos-availability/config"
	"github.com/nhoxwy/pos-availability/internal/controller/message"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	"github.com/nhoxwy/pos-availability/internal/external/kafka"
	"github.com/nhoxwy/pos-availability/internal/messaging"
	"github.com/nhoxwy/pos-availability/pkg/logger"
)

// StartWorkers starts the Kafka consumer that applies stock moves published
// by the webhook intake. It returns once the consumer goroutine is running
// and stops when ctx is cancelled.
func StartWorkers(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	stockService *stock.StockService,
) {
	moveController := message.NewStockMoveMessageController(l, stockService)

	dlq := kafka.NewDLQPublisher(l, cfg.KafkaBrokers, cfg.KafkaStockMovesDLQTopic)

	handler := messaging.WithMetrics(
		cfg.KafkaStockMovesTopic,
		cfg.KafkaStockMovesConsumerGroup,
		messaging.WithDLQ(
			messaging.WithRetry(moveController.HandleMessage, messaging.DefaultRetryConfig()),
			dlq,
		),
	)

	moveConsumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaStockMovesTopic,
		cfg.KafkaStockMovesConsumerGroup,
	)
	moveRunner := messaging.NewRunner(l, []messaging.Worker{moveConsumer}, handler)

	go func() {
		l.Info("Starting stock move consumer: topic=%s group=%s",
			cfg.KafkaStockMovesTopic, cfg.KafkaStockMovesConsumerGroup)
		if err := moveRunner.Start(ctx); err != nil {
			l.Error("Stock move runner failed: error=%v", err)
		}
	}()
}
