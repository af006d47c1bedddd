package update_appointment_status

import (
	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
// ID пользователя приходит из Auth middleware, а не из тела запроса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
