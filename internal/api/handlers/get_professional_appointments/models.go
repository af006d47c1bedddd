package get_professional_appointments

import (
	"fmt"
	"time"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/internal/service/appointments/models"
)

// queryParams распарсенные query параметры запроса
type queryParams struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToServiceRequest собирает модель сервиса из параметров маршрута
func (p *queryParams) ToServiceRequest(professionalID, userID int64) *models.GetProfessionalAppointmentsRequest {
	return &models.GetProfessionalAppointmentsRequest{
		UserID:          userID,
		ProfessionalID:  professionalID,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Status:          p.Status,
		IncludeInactive: p.IncludeInactive,
	}
}

// parseQueryParams парсит опциональные query параметры
// date=YYYY-MM-DD - сокращение для startDate=endDate=date
func parseQueryParams(get func(string) string) (*queryParams, error) {
	params := &queryParams{}

	if dateStr := get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		params.StartDate = &date
		params.EndDate = &date
	} else {
		if startStr := get("startDate"); startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				return nil, fmt.Errorf("invalid startDate: %w", err)
			}
			params.StartDate = &start
		}
		if endStr := get("endDate"); endStr != "" {
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				return nil, fmt.Errorf("invalid endDate: %w", err)
			}
			params.EndDate = &end
		}
	}

	if status := get("status"); status != "" {
		params.Status = &status
	}

	params.IncludeInactive = get("includeInactive") == "true"

	return params, nil
}
