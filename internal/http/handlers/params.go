package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

func seasonParam(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return fallback, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season < 1946 {
		return 0, fmt.Errorf("invalid season %q", raw)
	}
	return season, nil
}
