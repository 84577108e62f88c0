package file_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
	"github.com/vladislavdragonenkov/order-manager/internal/storage/file"
)

func newStore(t *testing.T) (*file.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := file.New(
		filepath.Join(dir, "orders.json"),
		filepath.Join(dir, "output_orders.json"),
		nil,
	)
	return store, dir
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			OrderID:  "A1",
			Customer: "Bob",
			Items: []domain.Item{
				{Name: "Cake", Price: 100, Quantity: 2},
				{Name: "Tea", Price: 30, Quantity: 1},
			},
		},
		{
			OrderID:  "B2",
			Customer: "",
			Items: []domain.Item{
				{Name: "Box", Price: 0, Quantity: 5},
			},
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	orders := sampleOrders()

	if err := store.Save(domain.SlotPending, orders); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(domain.SlotPending)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(orders, loaded) {
		t.Fatalf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", orders, loaded)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, _ := newStore(t)

	orders, err := store.Load(domain.SlotPending)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty collection, got %d orders", len(orders))
	}
}

func TestStore_LoadMasksAnomalies(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "whitespace only", content: "  \n\t "},
		{name: "malformed json", content: "{not json"},
		{name: "wrong shape", content: `{"order_id": "A1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, dir := newStore(t)
			path := filepath.Join(dir, "orders.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			orders, err := store.Load(domain.SlotPending)
			if err != nil {
				t.Fatalf("load must not fail, got %v", err)
			}
			if len(orders) != 0 {
				t.Fatalf("expected empty collection, got %d orders", len(orders))
			}
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := newStore(t)

	if err := store.Save(domain.SlotCompleted, sampleOrders()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(domain.SlotCompleted, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	orders, err := store.Load(domain.SlotCompleted)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected overwritten slot to be empty, got %d orders", len(orders))
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	store, _ := newStore(t)
	orders := sampleOrders()

	if err := store.Save(domain.SlotPending, orders); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	completed, err := store.Load(domain.SlotCompleted)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(completed) != 0 {
		t.Fatalf("completed slot must stay empty, got %d orders", len(completed))
	}
}

func TestStore_SaveToMissingDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	store := file.New(
		filepath.Join(dir, "nope", "orders.json"),
		filepath.Join(dir, "nope", "output_orders.json"),
		nil,
	)

	if err := store.Save(domain.SlotPending, sampleOrders()); err == nil {
		t.Fatal("expected save into missing directory to fail")
	}
}
