package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const msgLoadFailed = "не удалось загрузить список услуг, попробуйте позже"

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

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to load: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	h.logger.Info("GET /services - Loaded %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, services)
}
