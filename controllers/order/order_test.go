package orderControllers

import (
	"testing"

	"github.com/zahraaAed/Douluxme-Backend/models"
)

func TestCanViewUserOrders(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		callerID uint
		targetID uint
		legacy   bool
		want     bool
	}{
		// Legacy predicate: customers see everyone, admins only themselves.
		{name: "legacy customer own orders", role: models.RoleCustomer, callerID: 1, targetID: 1, legacy: true, want: true},
		{name: "legacy customer other orders", role: models.RoleCustomer, callerID: 1, targetID: 2, legacy: true, want: true},
		{name: "legacy admin own orders", role: models.RoleAdmin, callerID: 3, targetID: 3, legacy: true, want: true},
		{name: "legacy admin other orders", role: models.RoleAdmin, callerID: 3, targetID: 1, legacy: true, want: false},

		// Corrected predicate: own orders, or any orders for an admin.
		{name: "corrected customer own orders", role: models.RoleCustomer, callerID: 1, targetID: 1, legacy: false, want: true},
		{name: "corrected customer other orders", role: models.RoleCustomer, callerID: 1, targetID: 2, legacy: false, want: false},
		{name: "corrected admin other orders", role: models.RoleAdmin, callerID: 3, targetID: 1, legacy: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanViewUserOrders(tt.role, tt.callerID, tt.targetID, tt.legacy)
			if got != tt.want {
				t.Errorf("CanViewUserOrders(%s, %d, %d, legacy=%v) = %v, want %v",
					tt.role, tt.callerID, tt.targetID, tt.legacy, got, tt.want)
			}
		})
	}
}

func TestMapOrderStatus(t *testing.T) {
	valid := map[string]models.OrderStatus{
		"pending":   models.OrderStatusPending,
		"Completed": models.OrderStatusCompleted,
		"CANCELLED": models.OrderStatusCancelled,
	}
	for in, want := range valid {
		got, err := mapOrderStatus(in)
		if err != nil || got != want {
			t.Errorf("mapOrderStatus(%q) = (%q, %v), want (%q, nil)", in, got, err, want)
		}
	}

	for _, in := range []string{"", "shipped", "done"} {
		if _, err := mapOrderStatus(in); err == nil {
			t.Errorf("mapOrderStatus(%q) expected error", in)
		}
	}
}

func TestMapPaymentMethod(t *testing.T) {
	valid := map[string]models.PaymentMethod{
		"cash":      models.PaymentMethodCash,
		"Wishmoney": models.PaymentMethodWishmoney,
	}
	for in, want := range valid {
		got, err := mapPaymentMethod(in)
		if err != nil || got != want {
			t.Errorf("mapPaymentMethod(%q) = (%q, %v), want (%q, nil)", in, got, err, want)
		}
	}

	for _, in := range []string{"", "card", "paypal"} {
		if _, err := mapPaymentMethod(in); err == nil {
			t.Errorf("mapPaymentMethod(%q) expected error", in)
		}
	}
}
