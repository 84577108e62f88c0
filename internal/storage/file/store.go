package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
)

// Store хранит каждую коллекцию заказов в отдельном JSON-файле.
type Store struct {
	paths  map[domain.Slot]string
	logger *log.Entry
}

// New создаёт файловое хранилище с явными путями для каждого слота.
func New(pendingPath, completedPath string, logger *log.Entry) *Store {
	if logger == nil {
		logger = log.New().WithField("component", "file-store")
	}
	return &Store{
		paths: map[domain.Slot]string{
			domain.SlotPending:   pendingPath,
			domain.SlotCompleted: completedPath,
		},
		logger: logger,
	}
}

// Load читает коллекцию слота. Отсутствующий файл, пустое содержимое и
// повреждённый JSON маскируются пустой коллекцией — это контракт хранилища,
// а не упущение: читающая сторона не различает "нет файла" и "файл испорчен".
func (s *Store) Load(slot domain.Slot) ([]domain.Order, error) {
	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.WithFields(log.Fields{"slot": slot, "path": path}).
			WithError(err).Debug("slot unreadable, treating as empty")
		return []domain.Order{}, nil
	}

	if strings.TrimSpace(string(raw)) == "" {
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		s.logger.WithFields(log.Fields{"slot": slot, "path": path}).
			WithError(err).Debug("slot content malformed, treating as empty")
		return []domain.Order{}, nil
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	return orders, nil
}

// Save сериализует коллекцию целиком и атомарно заменяет файл слота.
// Ошибки записи возвращаются наружу: молчаливая потеря данных недопустима.
func (s *Store) Save(slot domain.Slot, orders []domain.Order) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	raw, err := json.MarshalIndent(orders, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", slot, err)
	}
	raw = append(raw, '\n')

	// Пишем во временный файл рядом с целевым и переименовываем,
	// чтобы читатель никогда не увидел частично записанный документ.
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for slot %s: %w", slot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close slot %s: %w", slot, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod slot %s: %w", slot, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot %s: %w", slot, err)
	}

	s.logger.WithFields(log.Fields{"slot": slot, "orders": len(orders)}).
		Debug("slot persisted")
	return nil
}

func (s *Store) path(slot domain.Slot) (string, error) {
	path, ok := s.paths[slot]
	if !ok || path == "" {
		return "", fmt.Errorf("unknown slot: %s", slot)
	}
	return path, nil
}

var _ domain.OrderStore = (*Store)(nil)
