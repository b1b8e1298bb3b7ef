package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"delivery-api/internal/model"
	"delivery-api/pkg/apierror"
)

const problemContentType = "application/problem+json"

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	problem := model.Problem{
		Error:  "Internal server error",
		Detail: "An unexpected error occurred",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		problem.Error = apiErr.Title
		problem.Detail = apiErr.Detail
	case errors.Is(err, model.ErrOrderNotFound):
		status = http.StatusNotFound
		problem.Error = "Order not found"
		problem.Detail = "Order does not exist"
	case errors.Is(err, model.ErrDeliveryNotFound):
		status = http.StatusNotFound
		problem.Error = "Delivery not found"
		problem.Detail = "Delivery does not exist"
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusBadRequest
		problem.Error = "Invalid request"
		problem.Detail = "User already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusBadRequest
		problem.Error = "Authentication failed"
		problem.Detail = "Invalid credentials"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
		problem.Error = "Invalid input data"
		problem.Detail = err.Error()
	default:
		slog.Error("unhandled error", "path", r.URL.Path, "error", err.Error())
	}

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Data:    problem,
	})
}
