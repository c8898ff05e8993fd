package subscription

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscriptions/internal/models"
)

// Тексты ошибок валидации, которые уходят клиенту в details.
const (
	MsgInvalidProduct = "Product is required and must be a non-empty string"
	MsgInvalidMonths  = "Months purchased must be an integer between 1 and 12"
)

// Validate проверяет сырое тело запроса и приводит его к SubscriptionRequest.
// product должен быть непустой строкой, monthsPurchased целым числом от 1 до 12;
// 3.0 считается целым. Каждое некорректное поле даёт своё сообщение в *ValidationError.
func (s *SubscriptionService) Validate(in models.SubscriptionInput) (models.SubscriptionRequest, error) {
	var req models.SubscriptionRequest
	var details []string

	if product, ok := in.Product.(string); ok && strings.TrimSpace(product) != "" {
		req.Product = product
	} else {
		details = append(details, MsgInvalidProduct)
	}

	if months, ok := wholeNumber(in.MonthsPurchased); ok && months >= 1 && months <= 12 {
		req.MonthsPurchased = months
	} else {
		details = append(details, MsgInvalidMonths)
	}

	if len(details) > 0 {
		return models.SubscriptionRequest{}, &ValidationError{Details: details}
	}
	if err := s.validateRequest(req); err != nil {
		return models.SubscriptionRequest{}, err
	}
	return req, nil
}

// wholeNumber возвращает значение числа JSON, если оно целое.
func wholeNumber(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		return n, true
	default:
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// validateRequest проверяет уже типизированный запрос тегами validator.
func (s *SubscriptionService) validateRequest(req models.SubscriptionRequest) error {
	var details []string

	if err := s.validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}
		for _, fe := range errs {
			switch fe.Field() {
			case "Product":
				details = append(details, MsgInvalidProduct)
			case "MonthsPurchased":
				details = append(details, MsgInvalidMonths)
			}
		}
	}

	if req.Product != "" && strings.TrimSpace(req.Product) == "" {
		details = append(details, MsgInvalidProduct)
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}
