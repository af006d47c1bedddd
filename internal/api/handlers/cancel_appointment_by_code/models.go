package cancel_appointment_by_code

// CancelByCodeRequest HTTP request model
type CancelByCodeRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
