package payment

// UpdatePaymentRequest changes a payment's status, method or both.
type UpdatePaymentRequest struct {
	Status *string `json:"status"`
	Method *string `json:"method"`
}

func (r UpdatePaymentRequest) empty() bool {
	return r.Status == nil && r.Method == nil
}
