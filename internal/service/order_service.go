package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"delivery-api/internal/event"
	"delivery-api/internal/model"
	"delivery-api/internal/validation"
	"delivery-api/pkg/apierror"
)

// OrderStore persists orders together with their single delivery record.
// FindByID and Delete return model.ErrOrderNotFound, UpdateDelivery returns
// model.ErrDeliveryNotFound.
type OrderStore interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	Delete(ctx context.Context, id int64) error
	UpdateDelivery(ctx context.Context, orderID int64, update model.DeliveryUpdate) error
}

type OrderService struct {
	store  OrderStore
	events event.Publisher
}

// NewOrderService publishes a domain event after every successful change;
// events may be nil.
func NewOrderService(store OrderStore, events event.Publisher) *OrderService {
	return &OrderService{store: store, events: events}
}

func (s *OrderService) Create(ctx context.Context, req model.CreateOrderRequest) (model.IDResult, error) {
	if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
		return model.IDResult{}, apierror.New("Invalid input data", validation.Issues(fieldErrs), http.StatusUnprocessableEntity)
	}

	id, err := s.store.Create(ctx, model.Order{
		Name:            req.Name,
		Description:     req.Description,
		PickUpAddress:   req.PickUpAddress,
		DeliveryAddress: req.DeliveryAddress,
		Weight:          *req.Weight,
		Dimensions:      req.Dimensions,
	})
	if err != nil {
		return model.IDResult{}, fmt.Errorf("create order: %w", err)
	}

	s.publish(event.New(event.TypeOrderCreated, id, nil))

	return model.IDResult{ID: id}, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (model.OrderView, error) {
	order, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrOrderNotFound) {
		return model.OrderView{}, orderNotFound(id)
	}
	if err != nil {
		return model.OrderView{}, fmt.Errorf("get order %d: %w", id, err)
	}

	return model.NewOrderView(order), nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) (model.IDResult, error) {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrOrderNotFound) {
		return model.IDResult{}, orderNotFound(id)
	}
	if err != nil {
		return model.IDResult{}, fmt.Errorf("delete order %d: %w", id, err)
	}

	s.publish(event.New(event.TypeOrderDeleted, id, nil))

	return model.IDResult{ID: id}, nil
}

func (s *OrderService) UpdateDelivery(ctx context.Context, orderID int64, req model.UpdateDeliveryRequest) (model.IDResult, error) {
	update := req.ToUpdate()
	if update.Empty() {
		return model.IDResult{}, apierror.New("Invalid input data",
			"A mandatory parameter skipped: TargetTimeDelivery or Status needed", http.StatusUnprocessableEntity)
	}
	if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
		return model.IDResult{}, apierror.New("Invalid input data", validation.Issues(fieldErrs), http.StatusUnprocessableEntity)
	}

	err := s.store.UpdateDelivery(ctx, orderID, update)
	if errors.Is(err, model.ErrDeliveryNotFound) {
		return model.IDResult{}, apierror.New("Delivery not found",
			fmt.Sprintf("Delivery with id %d does not exist", orderID), http.StatusNotFound)
	}
	if err != nil {
		return model.IDResult{}, fmt.Errorf("update delivery %d: %w", orderID, err)
	}

	s.publish(event.New(event.TypeDeliveryUpdated, orderID, deliveryChanges(update)))

	return model.IDResult{ID: orderID}, nil
}

func (s *OrderService) publish(e event.Event) {
	if s.events != nil {
		s.events.Publish(e)
	}
}

func deliveryChanges(u model.DeliveryUpdate) map[string]string {
	changes := make(map[string]string, 2)
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.TargetTimeDelivery != nil {
		changes["target_time_delivery"] = u.TargetTimeDelivery.UTC().Format(time.RFC3339)
	}
	return changes
}

func orderNotFound(id int64) error {
	return apierror.New("Order not found", fmt.Sprintf("Order with id %d not found", id), http.StatusNotFound)
}
