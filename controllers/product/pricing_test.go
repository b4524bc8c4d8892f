package productController

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		boxSize *int
		want    string
		wantErr bool
	}{
		{name: "no box size keeps unit price", unit: "10", boxSize: nil, want: "10"},
		{name: "box of 6", unit: "2.50", boxSize: intPtr(6), want: "15"},
		{name: "box of 12", unit: "10", boxSize: intPtr(12), want: "120"},
		{name: "box of 24", unit: "1.25", boxSize: intPtr(24), want: "30"},
		{name: "box of 5 rejected", unit: "10", boxSize: intPtr(5), wantErr: true},
		{name: "zero rejected", unit: "10", boxSize: intPtr(0), wantErr: true},
		{name: "negative rejected", unit: "10", boxSize: intPtr(-6), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := decimal.NewFromString(tt.unit)
			if err != nil {
				t.Fatalf("bad unit price %q: %v", tt.unit, err)
			}

			got, err := finalPrice(unit, tt.boxSize)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBoxSize) {
					t.Fatalf("finalPrice() error = %v, want ErrInvalidBoxSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("finalPrice() unexpected error: %v", err)
			}

			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("finalPrice() = %s, want %s", got, want)
			}
		})
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		raw     string
		want    []uint
		wantErr bool
	}{
		{raw: "", want: nil},
		{raw: "1", want: []uint{1}},
		{raw: "1,2,3", want: []uint{1, 2, 3}},
		{raw: " 4 , 5 ", want: []uint{4, 5}},
		{raw: "1,x", wantErr: true},
		{raw: "-1", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseIDList(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseIDList(%q) expected error, got %v", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIDList(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseIDList(%q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseIDList(%q)[%d] = %d, want %d", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}
