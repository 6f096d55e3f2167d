package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/pkg/schema"
	"github.com/lovoo/goka"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(v domain.Order) (s schema.OrderPlacedV1) {
	s.OrderID = v.ID
	s.UserID = v.UserID
	s.Tracking = v.Tracking
	s.Status = string(v.Status)
	s.Subtotal = v.Totals.Subtotal.String()
	s.Savings = v.Totals.Savings.String()
	s.DeliveryFee = v.Totals.DeliveryFee.String()
	s.Total = v.Totals.Total.String()
	s.PlacedAt = v.PlacedAt.UnixMilli()

	s.Lines = make([]schema.OrderLineV1, len(v.Lines))
	for i, l := range v.Lines {
		s.Lines[i] = schema.OrderLineV1{
			ProductID: int64(l.ProductID),
			Name:      l.Name,
			Quantity:  int64(l.Quantity),
			UnitPrice: l.UnitPrice.String(),
		}
	}
	return
}

func clientEventToSchemaV1(v domain.ClientEvent) schema.ClientEventV1 {
	return schema.ClientEventV1{
		EventID:   v.EventID,
		Kind:      v.Kind,
		UserID:    v.UserID,
		ProductID: int64(v.ProductID),
		OrderID:   v.OrderID,
		At:        v.At.UnixMilli(),
	}
}

func statusFromSchemaV1(s schema.OrderStatusV1) domain.OrderStatusUpdate {
	return domain.OrderStatusUpdate{
		OrderID:  s.OrderID,
		Tracking: s.Tracking,
		Status:   domain.OrderStatus(s.Status),
	}
}
