package model

type APIResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Problem is the data member of a failed response.
type Problem struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

type IDResult struct {
	ID int64 `json:"id"`
}
