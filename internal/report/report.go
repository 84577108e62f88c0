// Package report форматирует отчёты по заказам. Чистая презентация:
// состояние не читается и не мутируется, данные приходят параметрами.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
)

const ruleWidth = 50

// WriteOrders выводит отчёт по коллекции заказов с заголовком.
func WriteOrders(w io.Writer, title string, orders []domain.Order) {
	fmt.Fprintf(w, "\n%s %s %s\n", strings.Repeat("=", 20), title, strings.Repeat("=", 20))
	for idx, order := range orders {
		fmt.Fprintf(w, "Order #%d\n", idx+1)
		writeOrder(w, order)
	}
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

// WriteOrder выводит отчёт по одному заказу с заголовком.
func WriteOrder(w io.Writer, title string, order domain.Order) {
	fmt.Fprintf(w, "\n%s %s %s\n", strings.Repeat("=", 20), title, strings.Repeat("=", 20))
	writeOrder(w, order)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

func writeOrder(w io.Writer, order domain.Order) {
	fmt.Fprintf(w, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(w, "Customer: %s\n", order.Customer)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintln(w, "Item\tPrice\tQty\tSubtotal")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, item := range order.Items {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", item.Name, item.Price, item.Quantity, item.Subtotal())
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "Total: %d\n", order.Total())
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}
