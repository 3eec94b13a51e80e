package entity

import "time"

// Role clasificación de negocio cerrada para User. No es jerarquía de tipos:
// cada usuario tiene exactamente un rol y el rol no cambia de semántica en runtime.
type Role string

// Roles válidos del sistema.
const (
	RoleAdmin            Role = "admin"
	RoleShopManager      Role = "shop_manager"
	RoleCashier          Role = "cashier"
	RoleInventoryManager Role = "inventory_manager"
	RoleSupplier         Role = "supplier"
	RoleCustomer         Role = "customer"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShopManager, RoleCashier, RoleInventoryManager, RoleSupplier, RoleCustomer:
		return true
	}
	return false
}

// LandingRoute devuelve la ruta de aterrizaje tras login para el rol.
// El switch es exhaustivo sobre los roles válidos; un rol desconocido retorna ok=false
// (sin fallthrough silencioso a una ruta por defecto).
func (r Role) LandingRoute() (route string, ok bool) {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard", true
	case RoleShopManager:
		return "/shop-manager/dashboard", true
	case RoleCashier:
		return "/cashier/dashboard", true
	case RoleInventoryManager:
		return "/inventory-manager/dashboard", true
	case RoleSupplier:
		return "/supplier/dashboard", true
	case RoleCustomer:
		return "/customer/dashboard", true
	}
	return "", false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	Active       bool

	// Remember-me: token opaco rotado en cada uso, con expiración propia en DB
	// además del TTL de la cookie del cliente.
	RememberToken        string
	RememberTokenExpires *time.Time

	// Reset de contraseña: token de un solo uso con ventana corta.
	ResetToken        string
	ResetTokenExpires *time.Time

	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
