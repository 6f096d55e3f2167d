package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/pkg/schema"
	"github.com/lovoo/goka"
)

var _ port.TrackingViewer = (*OrderStatusView)(nil)

// An OrderStatusView serves tracking-number lookups from the status
// processor's group table.
type OrderStatusView struct {
	gv *goka.View
}

func NewOrderStatusView(
	seedBrokers []string, group string, statusSerde Serde,
) (*OrderStatusView, error) {
	const op = "NewOrderStatusView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		NewOrderStatusCodec(statusSerde),
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &OrderStatusView{gv}, nil
}

func (v *OrderStatusView) Run(ctx context.Context) {
	const op = "OrderStatusView.Run"
	log := slog.With("op", op)

	if err := v.gv.Run(ctx); err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

func (v *OrderStatusView) Track(
	tracking string,
) (domain.OrderStatusUpdate, error) {
	const op = "OrderStatusView.Track"

	val, err := v.gv.Get(tracking)
	if err != nil {
		return domain.OrderStatusUpdate{}, opErr(err, op)
	}
	if val == nil {
		return domain.OrderStatusUpdate{}, opErr(port.ErrTrackingNotFound, op)
	}

	s, ok := val.(schema.OrderStatusV1)
	if !ok {
		return domain.OrderStatusUpdate{}, opErr(
			fmt.Errorf("unexpected type %T", val), op,
		)
	}
	return statusFromSchemaV1(s), nil
}
