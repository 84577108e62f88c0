package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
)

// Service реализует бизнес-операции над очередями pending и completed.
// Каждая мутация выполняется по схеме: загрузить коллекцию целиком,
// изменить в памяти, сохранить коллекцию целиком.
type Service struct {
	store    domain.OrderStore
	timeline domain.TimelineRepository
	logger   *log.Entry
}

// NewService конструирует сервис с зависимостями.
func NewService(store domain.OrderStore, timeline domain.TimelineRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Service{
		store:    store,
		timeline: timeline,
		logger:   logger,
	}
}

// AddResult — результат успешного добавления заказа.
type AddResult struct {
	// OrderID — нормализованный идентификатор созданного заказа.
	OrderID string
}

// DispatchResult — результат успешной обработки заказа.
type DispatchResult struct {
	// Order — обработанный заказ (для немедленного отчёта).
	Order domain.Order
	// Message — подтверждение для пользователя.
	Message string
}

// Add проверяет ввод и добавляет новый заказ в очередь pending.
// Правила применяются по порядку, первая ошибка прерывает операцию;
// при любой ошибке очередь не меняется ни в памяти, ни на диске.
func (s *Service) Add(id, customer string, inputs []domain.ItemInput) (AddResult, error) {
	orderID := domain.NormalizeOrderID(id)
	if orderID == "" {
		return AddResult{}, domain.ErrOrderIDRequired
	}

	pending, err := s.store.Load(domain.SlotPending)
	if err != nil {
		return AddResult{}, fmt.Errorf("load pending: %w", err)
	}

	// Уникальность проверяется только в очереди pending: архив completed
	// может содержать заказ с тем же идентификатором.
	for _, order := range pending {
		if order.OrderID == orderID {
			return AddResult{}, domain.ErrDuplicateOrderID
		}
	}

	items := make([]domain.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := domain.BuildItem(input)
		if err != nil {
			return AddResult{}, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return AddResult{}, domain.ErrNoItems
	}

	order := domain.Order{
		OrderID:  orderID,
		Customer: customer,
		Items:    items,
	}

	pending = append(pending, order)
	if err := s.store.Save(domain.SlotPending, pending); err != nil {
		return AddResult{}, fmt.Errorf("persist pending: %w", err)
	}

	s.recordEvent(orderID, domain.TimelineEventOrderCreated)
	s.logger.WithFields(log.Fields{
		"order_id": orderID,
		"items":    len(items),
		"total":    order.Total(),
	}).Info("order added to pending")

	return AddResult{OrderID: orderID}, nil
}

// Dispatch переносит выбранный заказ из pending в completed.
// selection — позиция заказа в очереди pending, начиная с 1.
func (s *Service) Dispatch(selection int) (DispatchResult, error) {
	pending, err := s.store.Load(domain.SlotPending)
	if err != nil {
		return DispatchResult{}, fmt.Errorf("load pending: %w", err)
	}
	if len(pending) == 0 {
		return DispatchResult{}, domain.ErrNothingToDispatch
	}
	if selection < 1 || selection > len(pending) {
		return DispatchResult{}, domain.ErrSelectionOutOfRange
	}

	index := selection - 1
	order := pending[index]
	remaining := make([]domain.Order, 0, len(pending)-1)
	remaining = append(remaining, pending[:index]...)
	remaining = append(remaining, pending[index+1:]...)

	completed, err := s.store.Load(domain.SlotCompleted)
	if err != nil {
		return DispatchResult{}, fmt.Errorf("load completed: %w", err)
	}
	completed = append(completed, order)

	// Сначала пишем архив, затем очередь: сбой между записями оставит заказ
	// в обеих коллекциях (дубликат восстановим), а не потеряет его.
	if err := s.store.Save(domain.SlotCompleted, completed); err != nil {
		return DispatchResult{}, fmt.Errorf("persist completed: %w", err)
	}
	if err := s.store.Save(domain.SlotPending, remaining); err != nil {
		return DispatchResult{}, fmt.Errorf("persist pending after dispatch: %w", err)
	}

	s.recordEvent(order.OrderID, domain.TimelineEventOrderDispatched)
	s.logger.WithFields(log.Fields{
		"order_id":  order.OrderID,
		"pending":   len(remaining),
		"completed": len(completed),
	}).Info("order dispatched")

	return DispatchResult{
		Order:   order,
		Message: fmt.Sprintf("order %s dispatched", order.OrderID),
	}, nil
}

// Pending возвращает свежий снимок очереди заказов, ожидающих обработки.
func (s *Service) Pending() ([]domain.Order, error) {
	return s.store.Load(domain.SlotPending)
}

// Completed возвращает свежий снимок архива обработанных заказов.
func (s *Service) Completed() ([]domain.Order, error) {
	return s.store.Load(domain.SlotCompleted)
}

// recordEvent добавляет событие в журнал. Журнал вспомогательный,
// его сбой не должен ронять бизнес-операцию.
func (s *Service) recordEvent(orderID, eventType string) {
	if s.timeline == nil {
		return
	}
	event := domain.TimelineEvent{
		ID:       uuid.NewString(),
		OrderID:  orderID,
		Type:     eventType,
		Occurred: time.Now().UTC(),
	}
	if err := s.timeline.Append(event); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to record timeline event")
	}
}
