package model

import "time"

// User is a registered account. Salt and PasswordHash are hex strings and are
// never serialized to clients.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Salt         string `json:"-"`
	PasswordHash string `json:"-"`
}

// TokenPayload is the verified content of an access token.
type TokenPayload struct {
	Type      string
	Subject   string
	ExpiresAt time.Time
}

type AccessToken struct {
	AccessToken string `json:"access_token"`
}

type LoginResult struct {
	Result AccessToken `json:"result"`
}

type RegisterResult struct {
	Username string `json:"username"`
}
