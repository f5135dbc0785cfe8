package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/preston-bernstein/nba-playoffs-service/internal/logging"
)

// Recover turns a handler panic into the JSON 500 error shape.
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			logging.Error(loggerFromContext(r, h.logger), "handler panic", fmt.Errorf("%v", rec),
				logging.FieldPath, r.URL.Path,
				"stack", string(debug.Stack()),
			)
			writeError(w, r, http.StatusInternalServerError, "internal server error", h.logger)
		}()
		next.ServeHTTP(w, r)
	})
}
