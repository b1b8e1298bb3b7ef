package middleware

import (
	"encoding/json"
	"net/http"
)

const problemContentType = "application/problem+json"

func jsonEncode(w http.ResponseWriter, value any) error {
	return json.NewEncoder(w).Encode(value)
}
