package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"delivery-api/internal/credential"
	"delivery-api/internal/model"
	"delivery-api/internal/validation"
	"delivery-api/pkg/apierror"
)

// Hashed against when the username is unknown so both login failures cost
// the same.
var decoySalt = strings.Repeat("0", credential.SaltBytes*2)

var registerIssues = map[string]apierror.Issue{
	"username": {Title: "Invalid username", Detail: "Username must be between 4 and 31 characters long."},
	"password": {Title: "Invalid password", Detail: "Password must be between 9 and 127 characters long."},
}

type AuthService struct {
	users  *UserDirectory
	tokens *TokenService
}

func NewAuthService(users *UserDirectory, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		return model.LoginResult{}, apierror.New("Invalid input data", "username and password are required", http.StatusUnprocessableEntity)
	}

	user, found, err := s.users.GetUser(ctx, req.Username)
	if err != nil {
		return model.LoginResult{}, err
	}

	if !found {
		_ = credential.HashPassword(req.Password, decoySalt)
		return model.LoginResult{}, invalidCredentials()
	}

	if !credential.Verify(req.Password, user.Salt, user.PasswordHash) {
		return model.LoginResult{}, invalidCredentials()
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return model.LoginResult{}, err
	}

	return model.LoginResult{Result: model.AccessToken{AccessToken: token}}, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResult, error) {
	if fieldErrs := validation.Check(req); len(fieldErrs) > 0 {
		issues := make([]apierror.Issue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			if issue, ok := registerIssues[fe.Field]; ok {
				issues = append(issues, issue)
				continue
			}
			issues = append(issues, fe.Issue())
		}
		return model.RegisterResult{}, apierror.New("Invalid request", issues, http.StatusBadRequest)
	}

	_, exists, err := s.users.GetUser(ctx, req.Username)
	if err != nil {
		return model.RegisterResult{}, err
	}
	if exists {
		return model.RegisterResult{}, userExists()
	}

	if err := s.users.CreateUser(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) {
			return model.RegisterResult{}, userExists()
		}
		return model.RegisterResult{}, fmt.Errorf("register %q: %w", req.Username, err)
	}

	return model.RegisterResult{Username: req.Username}, nil
}

func invalidCredentials() error {
	return apierror.New("Authentication failed", "Invalid credentials", http.StatusBadRequest)
}

func userExists() error {
	return apierror.New("Invalid request", []apierror.Issue{{Title: "User exists", Detail: "User already exists"}}, http.StatusBadRequest)
}
