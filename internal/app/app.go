package app

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-manager/internal/cli"
	"github.com/vladislavdragonenkov/order-manager/internal/service/orders"
	"github.com/vladislavdragonenkov/order-manager/internal/storage/file"
	"github.com/vladislavdragonenkov/order-manager/internal/storage/memory"
)

// Run собирает зависимости и крутит цикл меню до выхода пользователя
// или отмены контекста.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	logger := log.WithField("component", "app")

	store := file.New(cfg.PendingPath, cfg.CompletedPath, log.WithField("component", "file-store"))
	timeline := memory.NewTimelineRepository()
	service := orders.NewService(store, timeline, log.WithField("component", "orders"))

	logger.WithFields(log.Fields{
		"pending_file":   cfg.PendingPath,
		"completed_file": cfg.CompletedPath,
	}).Debug("starting order manager")

	menu := cli.New(service, in, out, log.WithField("component", "cli"))
	return menu.Run(ctx)
}
