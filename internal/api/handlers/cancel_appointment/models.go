package cancel_appointment

import (
	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
// ID пользователя приходит из Auth middleware, а не из тела запроса
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(userID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
