package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")

	// Order/Delivery related errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrDeliveryNotFound = errors.New("delivery not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
