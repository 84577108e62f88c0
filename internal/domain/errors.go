package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order_id is required")
	// Ошибка идентификатора, не приведённого к канонической форме.
	ErrOrderIDNotNormalized = errors.New("order_id must be trimmed and uppercased")
	// Ошибка повторного использования идентификатора в очереди pending.
	ErrDuplicateOrderID = errors.New("order_id already exists in pending")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrNoItems = errors.New("order must contain at least one item")
	// Ошибка отсутствующего названия позиции.
	ErrItemNameRequired = errors.New("item name is required")
	// Ошибка, если цена не является целым числом.
	ErrPriceNotInteger = errors.New("item price must be an integer")
	// Ошибка отрицательной цены позиции.
	ErrPriceNegative = errors.New("item price must be non-negative")
	// Ошибка, если количество не является целым числом.
	ErrQuantityNotInteger = errors.New("item quantity must be an integer")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrQuantityNotPositive = errors.New("item quantity must be greater than zero")
	// ErrNothingToDispatch возвращается при попытке обработать пустую очередь pending.
	ErrNothingToDispatch = errors.New("no pending orders to dispatch")
	// ErrSelectionOutOfRange сигнализирует о выборе вне диапазона очереди pending.
	ErrSelectionOutOfRange = errors.New("selection is out of range")
)

// IsItemInputError проверяет, относится ли ошибка к вводу позиции заказа.
// Интерактивный слой на таких ошибках повторяет запрос, а не прерывает операцию.
func IsItemInputError(err error) bool {
	return errors.Is(err, ErrPriceNotInteger) ||
		errors.Is(err, ErrPriceNegative) ||
		errors.Is(err, ErrQuantityNotInteger) ||
		errors.Is(err, ErrQuantityNotPositive)
}
