package subscription

// DefaultPricePerMonth цена одного месяца подписки по умолчанию.
const DefaultPricePerMonth = 10

// Price стоимость подписки на months месяцев по плоской ставке.
func Price(months, pricePerMonth int) int {
	return months * pricePerMonth
}

// Delta разница в цене при смене подписки: положительная к доплате, отрицательная к возврату.
func Delta(oldMonths, newMonths, pricePerMonth int) int {
	return Price(newMonths, pricePerMonth) - Price(oldMonths, pricePerMonth)
}
