package get_barbers

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const msgLoadFailed = "не удалось загрузить список барберов, попробуйте позже"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbers, err := h.service.ListBarbers(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to load: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	h.logger.Info("GET /barbers - Loaded %d barbers", len(barbers))
	handlers.RespondJSON(w, http.StatusOK, barbers)
}
