// Package month содержит календарную арифметику по месяцам.
package month

import "time"

// Add прибавляет к t указанное число календарных месяцев.
// День месяца сохраняется, при переполнении дата переносится вперёд:
// 31 января + 1 месяц = 3 марта (2 марта в високосный год).
func Add(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
