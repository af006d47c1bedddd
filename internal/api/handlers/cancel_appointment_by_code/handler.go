package cancel_appointment_by_code

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidCode        = "некорректный код записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "запись не найдена"
	msgCannotCancel       = "запись не может быть отменена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/public/appointments/{publicCode}/cancel
// Публичный маршрут: владение кодом и есть право на отмену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["publicCode"]

	if _, err := uuid.Parse(code); err != nil {
		h.logger.Warn("PATCH /public/appointments/{code}/cancel - Invalid public code: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	var req CancelByCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /public/appointments/{code}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.CancelByPublicCode(r.Context(), code, req.CancellationReason)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /public/appointments/{code}/cancel - Appointment not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /public/appointments/{code}/cancel - Cannot cancel: code=%s", code)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /public/appointments/{code}/cancel - Failed to cancel appointment: code=%s, error=%v",
				code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /public/appointments/{code}/cancel - Appointment cancelled successfully: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
