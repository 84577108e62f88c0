// Package cli реализует интерактивный текстовый интерфейс поверх сервиса заказов.
// Ввод и вывод инжектируются, поэтому цикл полностью проверяется в тестах.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
	"github.com/vladislavdragonenkov/order-manager/internal/report"
	"github.com/vladislavdragonenkov/order-manager/internal/service/orders"
)

// Menu ведёт цикл меню: читает выбор пользователя и вызывает операции сервиса.
type Menu struct {
	svc    *orders.Service
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Entry
}

// New создаёт меню с указанными потоками ввода/вывода.
func New(svc *orders.Service, in io.Reader, out io.Writer, logger *log.Entry) *Menu {
	if logger == nil {
		logger = log.New().WithField("component", "cli")
	}
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run крутит цикл меню до выхода пользователя, конца ввода или отмены контекста.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, "\n*************** Menu ***************")
		fmt.Fprintln(m.out, "1. Add order")
		fmt.Fprintln(m.out, "2. Show order report")
		fmt.Fprintln(m.out, "3. Dispatch order")
		fmt.Fprintln(m.out, "4. Exit")
		fmt.Fprintln(m.out, "************************************")

		choice, ok := m.readLine("Select an option (Enter to exit): ")
		if !ok || choice == "" || choice == "4" {
			return nil
		}

		switch choice {
		case "1":
			m.addOrder()
		case "2":
			m.showReport()
		case "3":
			m.dispatchOrder()
		default:
			fmt.Fprintln(m.out, "=> Please choose a valid option (1-4)")
		}
	}
}

// addOrder собирает ввод заказа и передаёт его сервису.
func (m *Menu) addOrder() {
	rawID, ok := m.readLine("Order ID: ")
	if !ok {
		return
	}
	orderID := domain.NormalizeOrderID(rawID)

	// Дубликат отсекается сразу после ввода идентификатора, до сбора позиций.
	pending, err := m.svc.Pending()
	if err != nil {
		m.reportFailure(err)
		return
	}
	for _, order := range pending {
		if order.OrderID == orderID {
			fmt.Fprintf(m.out, "=> Error: order ID %s already exists\n", orderID)
			return
		}
	}

	customer, ok := m.readLine("Customer name: ")
	if !ok {
		return
	}

	var items []domain.ItemInput
	for {
		name, ok := m.readLine("Item name (empty to finish): ")
		if !ok || name == "" {
			break
		}

		price, ok := m.readValid("Price: ", domain.ParsePrice)
		if !ok {
			return
		}
		quantity, ok := m.readValid("Quantity: ", domain.ParseQuantity)
		if !ok {
			return
		}

		items = append(items, domain.ItemInput{
			Name:     name,
			Price:    strconv.FormatInt(price, 10),
			Quantity: strconv.FormatInt(quantity, 10),
		})
	}

	result, err := m.svc.Add(orderID, customer, items)
	if err != nil {
		m.reportFailure(err)
		return
	}
	fmt.Fprintf(m.out, "=> Order %s added\n", result.OrderID)
}

// showReport выводит отчёт по всем заказам в очереди pending.
func (m *Menu) showReport() {
	pending, err := m.svc.Pending()
	if err != nil {
		m.reportFailure(err)
		return
	}
	report.WriteOrders(m.out, "Order Report", pending)
}

// dispatchOrder запрашивает выбор заказа и переносит его в архив completed.
func (m *Menu) dispatchOrder() {
	pending, err := m.svc.Pending()
	if err != nil {
		m.reportFailure(err)
		return
	}
	if len(pending) == 0 {
		fmt.Fprintln(m.out, "=> No pending orders")
		return
	}

	fmt.Fprintln(m.out, "\n======== Pending Orders ========")
	for idx, order := range pending {
		fmt.Fprintf(m.out, "%d. Order ID: %s - Customer: %s\n", idx+1, order.OrderID, order.Customer)
	}
	fmt.Fprintln(m.out, "================================")

	for {
		choice, ok := m.readLine("Select an order to dispatch (number, Enter to cancel): ")
		if !ok || choice == "" {
			fmt.Fprintln(m.out, "=> Dispatch cancelled")
			return
		}

		selection, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(m.out, "=> Error: please enter a valid number")
			continue
		}

		result, err := m.svc.Dispatch(selection)
		if errors.Is(err, domain.ErrSelectionOutOfRange) {
			fmt.Fprintln(m.out, "=> Error: please enter a valid number")
			continue
		}
		if err != nil {
			m.reportFailure(err)
			return
		}

		fmt.Fprintf(m.out, "=> %s\n", result.Message)
		report.WriteOrder(m.out, "Dispatched Order", result.Order)
		return
	}
}

// readValid повторяет запрос, пока parse не примет ввод. Второй результат
// false означает конец входного потока.
func (m *Menu) readValid(prompt string, parse func(string) (int64, error)) (int64, bool) {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := parse(raw)
		if err != nil {
			fmt.Fprintf(m.out, "=> Error: %v\n", err)
			continue
		}
		return value, true
	}
}

// readLine печатает приглашение и возвращает обрезанную строку ввода.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// reportFailure печатает ошибку операции, не роняя цикл меню.
func (m *Menu) reportFailure(err error) {
	m.logger.WithError(err).Error("operation failed")
	fmt.Fprintf(m.out, "=> Error: %v\n", err)
}
