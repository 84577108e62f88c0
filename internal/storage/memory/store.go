package memory

import (
	"errors"
	"sync"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
)

// ErrSaveFailed возвращается хранилищем при включённой имитации сбоя записи.
var ErrSaveFailed = errors.New("simulated save failure")

// Store — in-memory реализация OrderStore для тестов и локальной разработки.
type Store struct {
	mu    sync.RWMutex
	slots map[domain.Slot][]domain.Order

	// FailSaves включает имитацию сбоя записи для указанного слота.
	failSaves map[domain.Slot]bool
	// savedSlots фиксирует порядок успешных записей (для проверок в тестах).
	savedSlots []domain.Slot
}

// NewStore возвращает пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{
		slots:     make(map[domain.Slot][]domain.Order),
		failSaves: make(map[domain.Slot]bool),
	}
}

// Load возвращает копию коллекции слота; отсутствующий слот — пустая коллекция.
func (s *Store) Load(slot domain.Slot) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.slots[slot]
	orders := make([]domain.Order, len(stored))
	copy(orders, stored)
	return orders, nil
}

// Save перезаписывает коллекцию слота копией переданного среза.
func (s *Store) Save(slot domain.Slot, orders []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSaves[slot] {
		return ErrSaveFailed
	}

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	stored := make([]domain.Order, len(orders))
	copy(stored, orders)
	s.slots[slot] = stored
	s.savedSlots = append(s.savedSlots, slot)
	return nil
}

// FailSaves включает или выключает имитацию сбоя записи для слота.
func (s *Store) FailSaves(slot domain.Slot, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSaves[slot] = fail
}

// SavedSlots возвращает порядок успешных записей с момента создания хранилища.
func (s *Store) SavedSlots() []domain.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := make([]domain.Slot, len(s.savedSlots))
	copy(saved, s.savedSlots)
	return saved
}

var _ domain.OrderStore = (*Store)(nil)
