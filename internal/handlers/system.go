package handlers

import (
	"net/http"
	"runtime"
	"time"
)

var startedAt = time.Now()

// SystemHandler — служебные эндпоинты.
type SystemHandler struct {
	base
}

func NewSystemHandler(b base) *SystemHandler {
	return &SystemHandler{base: b}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info отдаёт сведения о процессе; маршрут регистрируется только вне production.
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"environment": h.Config.Env,
		"goVersion":   runtime.Version(),
		"uptime":      time.Since(startedAt).Round(time.Second).String(),
		"tokenTTL":    h.Config.TokenTTL.String(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
