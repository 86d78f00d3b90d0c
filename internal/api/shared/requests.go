package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared across all request types; validator instances cache
// struct metadata, so one instance serves the whole package.
var validate = validator.New()

// DecodeJSON parses the request body into dst. Callers translate a failure
// into the malformed-body 400; the raw decoder error goes to logs only.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ValidateRequest runs struct-tag validation (required fields) on a decoded
// request body. Enumeration checks do not happen here: the canonical suit
// and value spellings are domain rules and are enforced by the domain.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
