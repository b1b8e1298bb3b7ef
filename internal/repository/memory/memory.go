// Package memory holds map-backed stores with the same contracts as the
// Postgres repositories. They are safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"delivery-api/internal/model"
)

type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]model.User

	// Err, when set, is returned by every call.
	Err error
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[string]model.User{}}
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return model.User{}, s.Err
	}

	user, ok := s.users[username]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.User{}, s.Err
	}

	if _, exists := s.users[user.Username]; exists {
		return model.User{}, model.ErrUserAlreadyExists
	}

	s.nextID++
	user.ID = s.nextID
	s.users[user.Username] = user
	return user, nil
}

// Delete removes a user, standing in for out-of-band administrative removal.
func (s *UserStore) Delete(username string) {
	s.mu.Lock()
	delete(s.users, username)
	s.mu.Unlock()
}

type OrderStore struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]model.Order
	now    func() time.Time
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: map[int64]model.Order{}, now: time.Now}
}

func (s *OrderStore) Create(_ context.Context, order model.Order) (int64, error) {
	if order.Weight < 0 || order.Weight > model.MaxWeight {
		return 0, fmt.Errorf("weight %d is out of range for integer column", order.Weight)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	order.ID = s.nextID
	order.CreationDate = s.now().UTC()
	order.Delivery = model.Delivery{
		ID:      s.nextID,
		OrderID: s.nextID,
		Status:  model.DefaultDeliveryStatus,
	}
	s.orders[order.ID] = order
	return order.ID, nil
}

func (s *OrderStore) FindByID(_ context.Context, id int64) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return model.Order{}, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return model.ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}

func (s *OrderStore) UpdateDelivery(_ context.Context, orderID int64, update model.DeliveryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return model.ErrDeliveryNotFound
	}

	if update.Status != nil {
		order.Delivery.Status = *update.Status
	}
	if update.TargetTimeDelivery != nil {
		target := update.TargetTimeDelivery.UTC()
		order.Delivery.TargetTimeDelivery = &target
	}
	s.orders[orderID] = order
	return nil
}
