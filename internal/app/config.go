package app

import (
	"os"
	"path/filepath"
)

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	// PendingPath — файл слота pending (очередь заказов).
	PendingPath string
	// CompletedPath — файл слота completed (архив обработанных заказов).
	CompletedPath string
	// LogLevel — уровень логирования logrus (debug, info, warn, error).
	LogLevel string
}

// DefaultConfig возвращает базовые пути файлов рядом с рабочей директорией.
func DefaultConfig() Config {
	return Config{
		PendingPath:   "orders.json",
		CompletedPath: "output_orders.json",
		LogLevel:      "warn",
	}
}

// FromEnv накладывает переменные окружения поверх конфигурации по умолчанию.
func FromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("ORDERS_DATA_DIR"); v != "" {
		cfg.PendingPath = filepath.Join(v, cfg.PendingPath)
		cfg.CompletedPath = filepath.Join(v, cfg.CompletedPath)
	}
	if v := os.Getenv("ORDERS_PENDING_FILE"); v != "" {
		cfg.PendingPath = v
	}
	if v := os.Getenv("ORDERS_COMPLETED_FILE"); v != "" {
		cfg.CompletedPath = v
	}
	if v := os.Getenv("ORDERS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
