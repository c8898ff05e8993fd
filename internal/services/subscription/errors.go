package subscription

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound подписки нет там, где она нужна.
	ErrNotFound = errors.New("no subscription found")
	// ErrAlreadyCancelled повторная отмена подписки.
	ErrAlreadyCancelled = errors.New("subscription is already cancelled")
)

// ValidationError некорректный запрос; побочных эффектов не было.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}
