package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	err := New("Order not found", "Order with id 7 not found", http.StatusNotFound)
	require.Equal(t, "Order not found: Order with id 7 not found", err.Error())

	bare := New("Internal server error", nil, http.StatusInternalServerError)
	require.Equal(t, "Internal server error", bare.Error())

	var nilErr *APIError
	require.Equal(t, "", nilErr.Error())
}

func TestAPIErrorUnwrapsThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("register: %w", New("Invalid request", []Issue{{Title: "Invalid username", Detail: "too short"}}, http.StatusBadRequest))

	var apiErr *APIError
	require.True(t, errors.As(wrapped, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	require.Len(t, apiErr.Detail, 1)
}
