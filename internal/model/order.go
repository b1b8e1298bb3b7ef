package model

import (
	"math"
	"time"
)

const DefaultDeliveryStatus = "created delivery request"

// MaxWeight is the largest weight the orders.weight INTEGER column holds.
const MaxWeight = math.MaxInt32

type Order struct {
	ID              int64
	Name            string
	Description     *string
	PickUpAddress   string
	DeliveryAddress string
	Weight          int
	Dimensions      string
	CreationDate    time.Time
	Delivery        Delivery
}

type Delivery struct {
	ID                 int64
	OrderID            int64
	Status             string
	TargetTimeDelivery *time.Time
}

// DeliveryUpdate enumerates the delivery fields a client may change. Nil
// fields are left untouched.
type DeliveryUpdate struct {
	Status             *string
	TargetTimeDelivery *time.Time
}

func (u DeliveryUpdate) Empty() bool {
	return u.Status == nil && u.TargetTimeDelivery == nil
}

type OrderView struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	Status             string  `json:"status"`
	TargetTimeDelivery *string `json:"target_time_delivery"`
	Dimensions         string  `json:"dimensions"`
	Weight             int     `json:"weight"`
	DeliveryAddress    string  `json:"deliveryAddress"`
	PickUpAddress      string  `json:"pickUpAddress"`
	CreationDate       string  `json:"creation_date"`
}

func NewOrderView(o Order) OrderView {
	view := OrderView{
		ID:              o.ID,
		Name:            o.Name,
		Description:     o.Description,
		Status:          o.Delivery.Status,
		Dimensions:      o.Dimensions,
		Weight:          o.Weight,
		DeliveryAddress: o.DeliveryAddress,
		PickUpAddress:   o.PickUpAddress,
		CreationDate:    o.CreationDate.UTC().Format(time.RFC3339),
	}

	if o.Delivery.TargetTimeDelivery != nil {
		formatted := o.Delivery.TargetTimeDelivery.UTC().Format(time.RFC3339)
		view.TargetTimeDelivery = &formatted
	}

	return view
}
