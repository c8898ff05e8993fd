// Package response содержит типы и функции для формирования JSON-ответов
// HTTP-обработчиков сервиса подписок.
package response

// ErrorResponse тело ответа с ошибкой.
// Details заполняется при ошибках валидации и ошибках платёжного сервиса.
type ErrorResponse struct {
	Error   string   `json:"error" example:"Validation failed"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse тело ответа с текстовым сообщением.
type MessageResponse struct {
	Message string `json:"message" example:"Subscription cancelled successfully"`
}

// Сообщения об ошибках, которые видит клиент.
const (
	MsgInternal           = "Internal server error"
	MsgNotFound           = "No subscription found"
	MsgValidationFailed   = "Validation failed"
	MsgPaymentFailed      = "Payment processing failed"
	MsgRefundFailed       = "Refund processing failed"
	MsgAlreadyCancelled   = "Subscription is already cancelled"
	MsgCancelled          = "Subscription cancelled successfully"
	MsgTooManyRequests    = "too many requests"
	MsgInvalidRequestBody = "invalid request body"
)

// Error возвращает ErrorResponse с сообщением и необязательными подробностями.
func Error(msg string, details ...string) ErrorResponse {
	return ErrorResponse{
		Error:   msg,
		Details: details,
	}
}

// Message возвращает MessageResponse.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
