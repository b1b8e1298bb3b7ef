package model

import "time"

type LoginRequest struct {
	Username string
	Password string
}

type RegisterRequest struct {
	Username string `json:"username" validate:"min=4,max=31"`
	Password string `json:"password" validate:"min=9,max=127"`
}

type CreateOrderRequest struct {
	Name            string  `json:"name" validate:"required"`
	PickUpAddress   string  `json:"pickUpAddress" validate:"required"`
	DeliveryAddress string  `json:"deliveryAddress" validate:"required"`
	Weight          *int    `json:"weight" validate:"required,gte=0,lte=2147483647"`
	Dimensions      string  `json:"dimensions" validate:"required"`
	Description     *string `json:"description"`
}

// UpdateDeliveryRequest accepts exactly the updatable delivery fields; JSON
// keys match case-insensitively, so "Status" and "TargetTimeDelivery" work too.
type UpdateDeliveryRequest struct {
	Status             *string    `json:"status" validate:"omitnil,min=1"`
	TargetTimeDelivery *time.Time `json:"targetTimeDelivery"`
}

func (r UpdateDeliveryRequest) ToUpdate() DeliveryUpdate {
	return DeliveryUpdate{Status: r.Status, TargetTimeDelivery: r.TargetTimeDelivery}
}
