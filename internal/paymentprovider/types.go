package paymentprovider

import (
	"encoding/json"
	"errors"
)

// Тип операции в платёжном сервисе.
const (
	TypePayment = "payment"
	TypeRefund  = "refund"
)

// ProcessPath путь обработки платежа в платёжном сервисе.
const ProcessPath = "/api/payment-methods/process"

// DefaultErrorMessage сообщение об ошибке, когда платёжный сервис не вернул своё.
const DefaultErrorMessage = "Payment service unavailable"

// ProcessRequest тело запроса на списание или возврат.
type ProcessRequest struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// ProcessResponse успешный ответ платёжного сервиса. Тело сохраняется как есть.
type ProcessResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// errorResponse тело неуспешного ответа платёжного сервиса.
type errorResponse struct {
	Error string `json:"error"`
}

// GatewayError ошибка обращения к платёжному сервису: сеть, таймаут или неуспешный статус.
type GatewayError struct {
	Type       string
	StatusCode int    // 0, если ответа не было
	Message    string // сообщение платёжного сервиса или DefaultErrorMessage
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return "payment gateway " + e.Type + ": " + e.Message + ": " + e.Err.Error()
	}
	return "payment gateway " + e.Type + ": " + e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// AsGatewayError достаёт GatewayError из цепочки ошибок.
func AsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}
