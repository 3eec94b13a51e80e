package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Cada rol válido tiene exactamente una ruta de aterrizaje.
func TestRole_LandingRoute(t *testing.T) {
	cases := []struct {
		role  Role
		route string
	}{
		{RoleAdmin, "/admin/dashboard"},
		{RoleShopManager, "/shop-manager/dashboard"},
		{RoleCashier, "/cashier/dashboard"},
		{RoleInventoryManager, "/inventory-manager/dashboard"},
		{RoleSupplier, "/supplier/dashboard"},
		{RoleCustomer, "/customer/dashboard"},
	}
	for _, tc := range cases {
		route, ok := tc.role.LandingRoute()
		assert.True(t, ok, "rol %s debe tener ruta", tc.role)
		assert.Equal(t, tc.route, route)
	}
}

// Un rol fuera del conjunto cerrado no aterriza en ninguna ruta.
func TestRole_LandingRoute_RolDesconocido(t *testing.T) {
	for _, r := range []Role{"", "superuser", "ADMIN", "Admin "} {
		route, ok := r.LandingRoute()
		assert.False(t, ok, "rol %q no debe tener ruta", r)
		assert.Empty(t, route)
		assert.False(t, r.Valid())
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleShopManager, RoleCashier, RoleInventoryManager, RoleSupplier, RoleCustomer} {
		assert.True(t, r.Valid(), "rol %s pertenece al conjunto cerrado", r)
	}
}
