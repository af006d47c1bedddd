package get_available_slots

import (
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date           time.Time     // Дата, на которую запрашивались слоты
	ProfessionalID int64         // ID профессионала
	Slots          []domain.Slot // Слоты дня в хронологическом порядке
}
