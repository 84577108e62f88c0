package domain

// Slot — имя постоянного хранилища одной коллекции заказов.
type Slot string

const (
	// SlotPending — очередь заказов, ожидающих обработки.
	SlotPending Slot = "pending"
	// SlotCompleted — архив обработанных заказов.
	SlotCompleted Slot = "completed"
)

// OrderStore описывает требования к хранилищу коллекций заказов.
type OrderStore interface {
	// Load возвращает коллекцию слота. Отсутствующий, пустой или повреждённый
	// документ трактуется как пустая коллекция, а не как ошибка.
	Load(slot Slot) ([]Order, error)
	// Save сериализует коллекцию целиком и перезаписывает содержимое слота.
	Save(slot Slot, orders []Order) error
}

// TimelineRepository описывает журнал событий жизненного цикла заказов.
type TimelineRepository interface {
	// Append добавляет событие в журнал.
	Append(event TimelineEvent) error
	// List возвращает события заказа в хронологическом порядке.
	List(orderID string) ([]TimelineEvent, error)
}
