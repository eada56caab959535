package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by the dispatcher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// messageReader is the subset of *kafka.Reader used by the consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter creates a writer publishing to topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

// NewKafkaReader creates a consumer-group reader for topic.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

// KafkaDispatcher publishes welcome emails to a Kafka topic.
type KafkaDispatcher struct {
	writer messageWriter
}

// NewKafkaDispatcher creates a dispatcher publishing through writer.
func NewKafkaDispatcher(writer messageWriter) *KafkaDispatcher {
	return &KafkaDispatcher{writer: writer}
}

// Dispatch publishes one message keyed by the recipient address.
func (d *KafkaDispatcher) Dispatch(ctx context.Context, email string) error {
	msg := NewMessage(email)

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode welcome email: %w", err)
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Email),
		Value: value,
	})

	logger.Log.Infow("publish welcome email",
		"message_id", msg.MessageID,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("publish welcome email: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}

// KafkaConsumer delivers welcome emails read from a Kafka topic.
type KafkaConsumer struct {
	reader messageReader
	sender Sender
}

func NewKafkaConsumer(reader messageReader, sender Sender) *KafkaConsumer {
	return &KafkaConsumer{reader: reader, sender: sender}
}

// Run consumes until ctx is done. Every fetched message is committed after
// one delivery attempt, whatever its outcome.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("fetch welcome email: %w", err)
		}

		var msg models.WelcomeEmail
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			logger.Log.Errorw("dropping malformed welcome email message",
				"offset", m.Offset, "partition", m.Partition, "error", err)
		} else {
			_ = Deliver(ctx, c.sender, msg)
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit welcome email: %w", err)
		}
	}
}

// Close closes the underlying reader.
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
