// Package authz modela permisos por pantalla y sub-acción del panel
// administrativo. Las claves son tipos cerrados: una clave inválida no
// compila, y en la frontera JSON se rechaza en deserialización.
package authz

// ScreenKey identifica una pantalla navegable del panel.
type ScreenKey string

const (
	ScreenDashboard       ScreenKey = "dashboard"
	ScreenManageUsers     ScreenKey = "manageUsers"
	ScreenManageProducts  ScreenKey = "manageProducts"
	ScreenManageOrders    ScreenKey = "manageOrders"
	ScreenPayments        ScreenKey = "payments"
	ScreenInvoice         ScreenKey = "invoice"
	ScreenShipping        ScreenKey = "shipping"
	ScreenReports         ScreenKey = "reports"
	ScreenCustomerDetails ScreenKey = "customerDetails"

	// ScreenLogout pseudo-pantalla: disponible para toda identidad
	// autenticada, no se almacena en el mapa de permisos.
	ScreenLogout ScreenKey = "logout"
)

// screens en orden estable de menú (sin la pseudo-pantalla logout).
var screens = []ScreenKey{
	ScreenDashboard,
	ScreenManageUsers,
	ScreenManageProducts,
	ScreenManageOrders,
	ScreenPayments,
	ScreenInvoice,
	ScreenShipping,
	ScreenReports,
	ScreenCustomerDetails,
}

// Screens devuelve el conjunto cerrado de pantallas en orden de menú.
func Screens() []ScreenKey {
	out := make([]ScreenKey, len(screens))
	copy(out, screens)
	return out
}

// Valid reporta si la clave pertenece al conjunto cerrado (incluye logout).
func (s ScreenKey) Valid() bool {
	if s == ScreenLogout {
		return true
	}
	for _, k := range screens {
		if k == s {
			return true
		}
	}
	return false
}

// Implicit reporta si la pantalla está permitida para toda identidad
// autenticada sin importar el mapa de permisos.
func (s ScreenKey) Implicit() bool {
	return s == ScreenDashboard || s == ScreenLogout
}

// SubActionKey identifica una operación fina dentro de una pantalla.
// Solo existen bajo manageUsers y manageProducts.
type SubActionKey string

const (
	SubAddUser       SubActionKey = "addUser"
	SubEditUser      SubActionKey = "editUser"
	SubDeleteUser    SubActionKey = "deleteUser"
	SubAddProduct    SubActionKey = "addProduct"
	SubEditProduct   SubActionKey = "editProduct"
	SubDeleteProduct SubActionKey = "deleteProduct"
)

// subActionParents padre de cada sub-acción.
var subActionParents = map[SubActionKey]ScreenKey{
	SubAddUser:       ScreenManageUsers,
	SubEditUser:      ScreenManageUsers,
	SubDeleteUser:    ScreenManageUsers,
	SubAddProduct:    ScreenManageProducts,
	SubEditProduct:   ScreenManageProducts,
	SubDeleteProduct: ScreenManageProducts,
}

// Parent devuelve la pantalla bajo la cual está anidada la sub-acción.
func (a SubActionKey) Parent() ScreenKey {
	return subActionParents[a]
}

// Valid reporta si la sub-acción pertenece al conjunto cerrado.
func (a SubActionKey) Valid() bool {
	_, ok := subActionParents[a]
	return ok
}

// SubActionsOf devuelve las sub-acciones definidas bajo una pantalla,
// en orden estable. Vacío para pantallas sin sub-acciones.
func SubActionsOf(s ScreenKey) []SubActionKey {
	switch s {
	case ScreenManageUsers:
		return []SubActionKey{SubAddUser, SubEditUser, SubDeleteUser}
	case ScreenManageProducts:
		return []SubActionKey{SubAddProduct, SubEditProduct, SubDeleteProduct}
	default:
		return nil
	}
}

// Access nivel grueso de acceso; fallback cuando no hay mapa fino.
type Access string

const (
	AccessFull    Access = "full"
	AccessPartial Access = "partial"
)

// Valid reporta si el nivel de acceso es conocido.
func (a Access) Valid() bool {
	return a == AccessFull || a == AccessPartial
}

// Role rol del usuario. El rol gobierna pantallas a nivel de menú en el
// cliente; la autorización fina la decide el mapa de permisos.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleUser    Role = "user"
)

// Valid reporta si el rol es conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleUser:
		return true
	}
	return false
}
