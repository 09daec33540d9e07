package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "salabelleza/internal/errors"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error, fallback string, fallbackStatus int) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, fallback, fallbackStatus)
}

// decodeAndValidate decodifica el body y corre las validaciones de campos
// antes de tocar la base: una request inválida nunca llega a la red interna.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.ErrBadRequest("Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.ErrBadRequest(err.Error())
	}
	return nil
}
