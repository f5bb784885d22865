package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Producer публикует события корзины и заказов. Запись асинхронная:
// вызов не блокирует запрос, ошибки доставки только логируются.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
	now    func() time.Time
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    100,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %d messages dropped: %s", len(messages), err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// PublishCartEvent пишет событие с ключом-сессией: события одной корзины попадают в одну партицию.
func (p *Producer) PublishCartEvent(ctx context.Context, sessionID string, ev cart.Event) error {
	return p.write(ctx, sessionID, newCartEventMessage(sessionID, ev, p.now()))
}

func (p *Producer) PublishOrderPlaced(ctx context.Context, sessionID string, confirmation *domain.OrderConfirmation) error {
	return p.write(ctx, sessionID, newOrderPlacedMessage(sessionID, confirmation, p.now()))
}

// CartObserver возвращает наблюдателя для cart.Manager.
func (p *Producer) CartObserver() cart.SessionObserver {
	return func(sessionID string, ev cart.Event) {
		if err := p.PublishCartEvent(context.Background(), sessionID, ev); err != nil {
			p.logger.Warnf("failed to publish cart event %s: %v", ev.Kind, err)
		}
	}
}

func (p *Producer) write(ctx context.Context, key string, msg any) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureTopic создаёт топик, если его нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
