package profileservice

// Professional модель профессионала из ProfileService
type Professional struct {
	ID          int64  `json:"id"`
	CompanyID   int64  `json:"company_id"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}

// Service модель услуги из ProfileService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"`
	ProfessionalIDs []int64  `json:"professional_ids"`
}

// OfferedBy проверяет, что услугу оказывает указанный профессионал
func (s *Service) OfferedBy(professionalID int64) bool {
	for _, id := range s.ProfessionalIDs {
		if id == professionalID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
