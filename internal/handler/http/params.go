package http

import (
	"net/http"

	"github.com/empdesk/empdesk-backend-go/internal/handler/http/response"
	"github.com/empdesk/empdesk-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// uuidParam reads a UUID path parameter, writing a BadRequest response and
// returning ok=false when it is missing or malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	value := chi.URLParam(r, name)
	if !validator.IsValidUUID(value) {
		response.BadRequest(w, label+" must be a valid UUID", nil)
		return "", false
	}
	return value, true
}

func employeeIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	return uuidParam(w, r, "employeeId", "Employee ID")
}
