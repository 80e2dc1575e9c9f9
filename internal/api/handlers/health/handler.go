package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusNotReady = "not_ready"

	checkTimeout = 2 * time.Second
)

// PingerFunc адаптер функции к Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// Response ответ проверки
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	pingers map[string]Pinger
	probes  map[string]ReadinessProbe
	logger  Logger
}

func NewHandler(pingers map[string]Pinger, probes map[string]ReadinessProbe, logger Logger) *Handler {
	return &Handler{
		pingers: pingers,
		probes:  probes,
		logger:  logger,
	}
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK})
}

// Ready GET /readyz
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := Response{Status: statusOK, Checks: make(map[string]string, len(h.pingers)+len(h.probes))}

	for _, name := range sortedKeys(h.pingers) {
		if err := h.pingers[name].PingContext(ctx); err != nil {
			h.logger.Warn("GET /readyz - %s is not available: %v", name, err)
			resp.Checks[name] = statusNotReady
			resp.Status = statusNotReady
			continue
		}
		resp.Checks[name] = statusOK
	}

	for _, name := range sortedKeys(h.probes) {
		if !h.probes[name].Ready() {
			resp.Checks[name] = statusNotReady
			resp.Status = statusNotReady
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if resp.Status != statusOK {
		code = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, code, resp)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
