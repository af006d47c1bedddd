package create_appointment

import (
	"time"

	"github.com/m04kA/SMP-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	CustomerName   string           // Имя клиента
	CustomerPhone  string           // Телефон клиента
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	PublicCode      string           // Публичный код для клиента
	ProfessionalID  int64            // ID профессионала
	ServiceID       int64            // ID услуги
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	Status          string           // Статус записи
	CustomerName    string           // Имя клиента
	CustomerPhone   string           // Телефон клиента
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
