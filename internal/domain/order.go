package domain

import "strings"

// Item представляет одну позицию заказа.
type Item struct {
	// Name — название товара, обязательно непустое.
	Name string `json:"name"`
	// Price — цена за единицу в целых денежных единицах, не может быть отрицательной.
	Price int64 `json:"price"`
	// Quantity — количество единиц товара, строго положительное.
	Quantity int64 `json:"quantity"`
}

// Subtotal возвращает стоимость позиции: цена * количество.
func (i Item) Subtotal() int64 {
	return i.Price * i.Quantity
}

// Order агрегирует заказ клиента и его позиции.
type Order struct {
	OrderID  string `json:"order_id"`
	Customer string `json:"customer"`
	Items    []Item `json:"items"`
}

// Total возвращает сумму заказа по всем позициям. Заказ не мутируется.
func (o Order) Total() int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.Subtotal()
	}
	return sum
}

// NormalizeOrderID приводит идентификатор к канонической форме:
// обрезает пробелы и переводит в верхний регистр.
func NormalizeOrderID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o Order) ValidateInvariants() []error {
	var errs []error

	if o.OrderID == "" {
		errs = append(errs, ErrOrderIDRequired)
	}
	if o.OrderID != NormalizeOrderID(o.OrderID) {
		errs = append(errs, ErrOrderIDNotNormalized)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrNoItems)
	}
	for _, item := range o.Items {
		if item.Name == "" {
			errs = append(errs, ErrItemNameRequired)
		}
		if item.Price < 0 {
			errs = append(errs, ErrPriceNegative)
		}
		if item.Quantity <= 0 {
			errs = append(errs, ErrQuantityNotPositive)
		}
	}

	return errs
}
