package kafka

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/pkg/schema"
	"github.com/lovoo/goka"
)

// An OrderStatusCodec serdes [schema.OrderStatusV1] values.
type OrderStatusCodec struct {
	serde Serde
}

func NewOrderStatusCodec(s Serde) OrderStatusCodec {
	return OrderStatusCodec{s}
}

func (c OrderStatusCodec) Encode(v any) ([]byte, error) {
	const op = "OrderStatusCodec.Encode"
	if _, ok := v.(schema.OrderStatusV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c OrderStatusCodec) Decode(data []byte) (any, error) {
	const op = "OrderStatusCodec.Decode"
	var s schema.OrderStatusV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

var _ port.OrderStatusProcessor = (*OrderStatusProcessor)(nil)

// An OrderStatusProcessor consumes seller-side status updates, keyed by
// tracking number. Each update is applied to the order repository and
// the latest status persisted to the group table for tracking lookups.
type OrderStatusProcessor struct {
	gp    *goka.Processor
	saver port.OrderStatusSaver
}

func NewOrderStatusProcessor(
	seedBrokers []string,
	stream, group string,
	statusSerde Serde,
	saver port.OrderStatusSaver,
) (*OrderStatusProcessor, error) {
	const op = "NewOrderStatusProcessor"

	p := &OrderStatusProcessor{saver: saver}
	codec := NewOrderStatusCodec(statusSerde)

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(goka.Stream(stream), codec, p.processFn),
		goka.Persist(codec),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.gp = gp
	return p, nil
}

func (p *OrderStatusProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "OrderStatusProcessor.Run"
	log := slog.With("op", op)

	defer stopFn()

	go func() {
		p.gp.WaitForReady()
		wg.Done()
	}()

	if err := p.gp.Run(ctx); err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *OrderStatusProcessor) Close() {
	const op = "OrderStatusProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p *OrderStatusProcessor) processFn(ctx goka.Context, msg any) {
	const op = "OrderStatusProcessor.processFn"
	log := slog.With("op", op)

	s, ok := msg.(schema.OrderStatusV1)
	if !ok {
		log.Error("unexpected message type", "key", ctx.Key())
		return
	}

	upd := statusFromSchemaV1(s)
	if err := p.saver.SaveOrderStatus(ctx.Context(), upd); err != nil {
		log.Error("failed to save order status",
			"orderID", upd.OrderID, "err", err)
		return
	}

	ctx.SetValue(s)
	log.Info("order status applied",
		"orderID", upd.OrderID, "status", upd.Status)
}
