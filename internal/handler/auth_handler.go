package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"delivery-api/internal/middleware"
	"delivery-api/internal/model"
	"delivery-api/internal/service"
	"delivery-api/pkg/apierror"
)

const maxBodyBytes = 1 << 20

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login takes form-encoded credentials, the OAuth2 password-flow shape.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, apierror.New("Invalid input data", "invalid form body", http.StatusUnprocessableEntity))
		return
	}

	result, err := h.service.Login(r.Context(), model.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusAccepted, result)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload model.RegisterRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, result)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.New("Invalid request", "Authentication required", http.StatusUnauthorized))
		return
	}

	writeSuccess(w, http.StatusOK, model.RegisterResult{Username: user.Username})
}

// decodeJSON reads exactly one JSON object and rejects fields dst does not
// declare as well as anything after the object.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return apierror.New("Invalid input data", err.Error(), http.StatusUnprocessableEntity)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apierror.New("Invalid input data", "request body must contain a single JSON object", http.StatusUnprocessableEntity)
	}
	return nil
}
