package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/lib/utils"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
)

type OrderService struct {
	server *server.Server
	orders *repository.Collection[model.Order]
	taken  func(id string) bool
}

func NewOrderService(s *server.Server, repos *repository.Repositories) *OrderService {
	return &OrderService{
		server: s,
		orders: repos.Orders,
		taken:  repos.IDTaken,
	}
}

func orderNotFound(id string) error {
	return errs.NewNotFoundError(fmt.Sprintf("Order id not found: %s", id))
}

// Load attaches the order named by the route id, or fails with 404.
func (o *OrderService) Load() chain.Stage[model.Order] {
	return chain.Step("orderExists", func(ctx context.Context, st *chain.State[model.Order]) error {
		order, ok := o.orders.FindByID(st.RouteID)
		if !ok {
			return orderNotFound(st.RouteID)
		}
		st.Attach(order)
		return nil
	})
}

func (o *OrderService) List(ctx context.Context, st *chain.State[model.Order]) (chain.Result, error) {
	return chain.OK(o.orders.List()), nil
}

// Create appends a new order. An omitted status starts the order as pending.
func (o *OrderService) Create(ctx context.Context, st *chain.State[model.Order]) (chain.Result, error) {
	order, err := decodeOrder(st.Payload)
	if err != nil {
		return chain.Result{}, err
	}
	if order.Status == "" {
		order.Status = model.StatusPending
	}
	order.ID = utils.NextID(o.taken)

	o.orders.Append(order)

	zerolog.Ctx(ctx).Info().
		Str("order_id", order.ID).
		Int("lines", len(order.Dishes)).
		Msg("order created")

	return chain.Created(order), nil
}

func (o *OrderService) Read(ctx context.Context, st *chain.State[model.Order]) (chain.Result, error) {
	order, ok := st.Record()
	if !ok {
		return chain.Result{}, errs.NewInternalServerError()
	}
	return chain.OK(order), nil
}

// Update replaces every mutable field of the loaded order. The id never changes.
func (o *OrderService) Update(ctx context.Context, st *chain.State[model.Order]) (chain.Result, error) {
	current, ok := st.Record()
	if !ok {
		return chain.Result{}, errs.NewInternalServerError()
	}

	order, err := decodeOrder(st.Payload)
	if err != nil {
		return chain.Result{}, err
	}
	order.ID = current.ID

	if !o.orders.Update(order) {
		return chain.Result{}, orderNotFound(current.ID)
	}

	zerolog.Ctx(ctx).Info().
		Str("order_id", order.ID).
		Str("from_status", string(current.Status)).
		Str("to_status", string(order.Status)).
		Msg("order updated")

	return chain.OK(order), nil
}

// Destroy removes the loaded order.
func (o *OrderService) Destroy(ctx context.Context, st *chain.State[model.Order]) (chain.Result, error) {
	current, ok := st.Record()
	if !ok {
		return chain.Result{}, errs.NewInternalServerError()
	}

	if !o.orders.Remove(current.ID) {
		return chain.Result{}, orderNotFound(current.ID)
	}

	zerolog.Ctx(ctx).Info().Str("order_id", current.ID).Msg("order deleted")

	return chain.NoContent(), nil
}

// decodeOrder builds an order from validated payload fields. The body id is
// never copied, and a status that is not a string counts as omitted.
func decodeOrder(p chain.Payload) (model.Order, error) {
	omit := []string{"id"}
	if _, ok := p.Value("status").(string); !ok {
		omit = append(omit, "status")
	}

	var order model.Order
	if err := p.Omit(omit...).Decode(&order); err != nil {
		return model.Order{}, errs.NewBadRequestError("Order data has a field of the wrong type")
	}
	return order, nil
}
