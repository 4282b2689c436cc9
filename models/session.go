package models

// Role is the viewer role of the storefront.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADM"
)

// View is the active screen.
type View string

const (
	ViewCatalog   View = "catalog"
	ViewDashboard View = "dashboard"
	ViewInventory View = "inventory"
	ViewFinance   View = "finance"
)

// AdminOnly reports whether v must not render for a client.
func (v View) AdminOnly() bool {
	return v == ViewDashboard || v == ViewInventory || v == ViewFinance
}

// Session tracks role and active view. The admin gate is a single shared
// passcode and is not an authentication boundary.
type Session struct {
	Role       Role `json:"role"`
	View       View `json:"view"`
	LoginError bool `json:"loginError"`
}

func NewSession() Session {
	return Session{Role: RoleClient, View: ViewCatalog}
}

// Login moves CLIENT to ADM when check accepts the passcode. On mismatch the
// role is unchanged and LoginError is raised.
func (s Session) Login(passcode string, check func(string) bool) Session {
	if check != nil && check(passcode) {
		return Session{Role: RoleAdmin, View: ViewDashboard}
	}
	s.LoginError = true
	return s
}

// Logout always returns to CLIENT on the catalog view.
func (s Session) Logout() Session {
	return NewSession()
}

// Navigate switches view; admin views are refused for clients.
func (s Session) Navigate(v View) (Session, bool) {
	if v.AdminOnly() && s.Role != RoleAdmin {
		return s, false
	}
	s.View = v
	return s, true
}

// ParseView reports whether s names a known view.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewCatalog, ViewDashboard, ViewInventory, ViewFinance:
		return View(s), true
	}
	return "", false
}
