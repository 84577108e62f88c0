package domain

import (
	"strconv"
	"strings"
)

// ItemInput — сырой (ещё не проверенный) ввод одной позиции заказа.
type ItemInput struct {
	Name     string
	Price    string
	Quantity string
}

// ParsePrice проверяет текстовый ввод цены и возвращает целое значение.
// Некорректный ввод различается по причине: не число либо отрицательное число.
func ParsePrice(raw string) (int64, error) {
	price, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrPriceNotInteger
	}
	if price < 0 {
		return 0, ErrPriceNegative
	}
	return price, nil
}

// ParseQuantity проверяет текстовый ввод количества и возвращает целое значение.
func ParseQuantity(raw string) (int64, error) {
	qty, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrQuantityNotInteger
	}
	if qty <= 0 {
		return 0, ErrQuantityNotPositive
	}
	return qty, nil
}

// BuildItem собирает позицию заказа из сырого ввода. Первая ошибка прерывает сборку.
func BuildItem(input ItemInput) (Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Item{}, ErrItemNameRequired
	}

	price, err := ParsePrice(input.Price)
	if err != nil {
		return Item{}, err
	}

	qty, err := ParseQuantity(input.Quantity)
	if err != nil {
		return Item{}, err
	}

	return Item{Name: name, Price: price, Quantity: qty}, nil
}
