package kafka_test

import (
	"context"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/config"
	"impressions/infras/kafka"
)

type inquiryCreated struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestMessage_RoundTrip(t *testing.T) {
	message := kafka.Message{Key: "inq-1", Value: inquiryCreated{ID: "inq-1", Name: "Ada"}}

	msg, err := message.ToKafkaMessage("inquiry.created")
	require.NoError(t, err)

	assert.Equal(t, "inquiry.created", msg.Topic)
	assert.Equal(t, []byte("inq-1"), msg.Key)
	assert.JSONEq(t, `{"id":"inq-1","name":"Ada"}`, string(msg.Value))

	decoded, err := kafka.Decode[inquiryCreated](msg)
	require.NoError(t, err)
	assert.Equal(t, inquiryCreated{ID: "inq-1", Name: "Ada"}, decoded)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := kafka.Decode[inquiryCreated](kafkaGo.Message{Value: []byte("{")})

	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	client := kafka.New(&config.Config{})

	require.NoError(t, client.SendMessages(context.Background(), "inquiry.created", kafka.Message{Key: "x"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	done := make(chan struct{})

	go func() {
		client.Consume(ctx, "", "inquiry.created", func(context.Context, kafkaGo.Message) error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled consumer did not return after context cancellation")
	}

	assert.NoError(t, client.Close())
}
