package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tourism/shared/failure"
	"tourism/shared/validator"
	"tourism/transport/http/response"
)

// UUIDParams rejects requests whose named path parameters are not UUIDs.
func UUIDParams(names ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, name := range names {
				if err := validator.ValidateVar(chi.URLParam(r, name), "required,uuid"); err != nil {
					response.WithError(w, failure.BadRequestFromString(name+" must be a valid UUID"))

					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
