// Package notifier follows the enquiry events so staff hear about new
// enquiries without watching the admin list.
package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"impressions/config"
	"impressions/infras/kafka"
	"impressions/infras/otel"
	inquiryDto "impressions/internal/domains/inquiry/model/dto"
	"impressions/shared/constant"
	"impressions/shared/failure"
)

type Notifier struct {
	config *config.Config
	kafka  kafka.Client
	otel   otel.Otel
}

func New(config *config.Config, kafka kafka.Client, otel otel.Otel) *Notifier {
	return &Notifier{
		config: config,
		kafka:  kafka,
		otel:   otel,
	}
}

// Run consumes enquiry events until ctx is done.
func (n *Notifier) Run(ctx context.Context) {
	log.Info().Str("topic", n.config.Kafka.Topics.InquiryCreated).Msg("Notifier listening for new enquiries")

	n.kafka.Consume(ctx, n.config.Kafka.ConsumerGroup, n.config.Kafka.Topics.InquiryCreated, n.Handle)

	if err := n.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}
}

// Handle announces one enquiry. A message that cannot be decoded is reported
// and left uncommitted.
func (n *Notifier) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	_, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".inquiry.Created")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := kafka.Decode[inquiryDto.InquiryCreatedEvent](message)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	if event.ID == constant.Empty {
		return fmt.Errorf("enquiry event without id at offset %d", message.Offset)
	}

	log.Info().
		Str("id", event.ID).
		Str("name", event.Name).
		Str("phone", event.Phone).
		Str("email", event.Email).
		Str("service", event.Service).
		Time("created_at", event.CreatedAt).
		Msg("New enquiry received")

	return nil
}
