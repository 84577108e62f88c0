package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/order-manager/internal/domain"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "ok", in: "100", want: 100},
		{name: "zero is allowed", in: "0", want: 0},
		{name: "surrounding spaces", in: " 42 ", want: 42},
		{name: "not a number", in: "abc", wantErr: domain.ErrPriceNotInteger},
		{name: "float", in: "10.5", wantErr: domain.ErrPriceNotInteger},
		{name: "empty", in: "", wantErr: domain.ErrPriceNotInteger},
		{name: "negative", in: "-1", wantErr: domain.ErrPriceNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParsePrice(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err == nil && got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "ok", in: "3", want: 3},
		{name: "not a number", in: "three", wantErr: domain.ErrQuantityNotInteger},
		{name: "empty", in: "", wantErr: domain.ErrQuantityNotInteger},
		{name: "zero", in: "0", wantErr: domain.ErrQuantityNotPositive},
		{name: "negative", in: "-2", wantErr: domain.ErrQuantityNotPositive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParseQuantity(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err == nil && got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestBuildItem(t *testing.T) {
	item, err := domain.BuildItem(domain.ItemInput{Name: " Cake ", Price: "100", Quantity: "2"})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if item.Name != "Cake" || item.Price != 100 || item.Quantity != 2 {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestBuildItem_Errors(t *testing.T) {
	cases := []struct {
		name    string
		input   domain.ItemInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   domain.ItemInput{Name: "  ", Price: "100", Quantity: "1"},
			wantErr: domain.ErrItemNameRequired,
		},
		{
			name:    "bad price",
			input:   domain.ItemInput{Name: "Cake", Price: "x", Quantity: "1"},
			wantErr: domain.ErrPriceNotInteger,
		},
		{
			name:    "bad quantity",
			input:   domain.ItemInput{Name: "Cake", Price: "100", Quantity: "0"},
			wantErr: domain.ErrQuantityNotPositive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := domain.BuildItem(tc.input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestIsItemInputError(t *testing.T) {
	for _, err := range []error{
		domain.ErrPriceNotInteger,
		domain.ErrPriceNegative,
		domain.ErrQuantityNotInteger,
		domain.ErrQuantityNotPositive,
	} {
		if !domain.IsItemInputError(err) {
			t.Errorf("expected %v to be an item input error", err)
		}
	}

	if domain.IsItemInputError(domain.ErrDuplicateOrderID) {
		t.Error("duplicate id is not an item input error")
	}
}
