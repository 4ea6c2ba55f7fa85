package access

import "bengkel/internal/domain"

// capabilities maps a resource (one per screen of the dashboard) to the
// roles allowed to use it. This is the navigation role filter of the UI
// expressed as a single testable table.
var capabilities = map[string][]domain.Role{
	"dashboard":       {domain.RoleAdmin, domain.RoleCashier, domain.RoleMechanic},
	"orders":          {domain.RoleAdmin, domain.RoleCashier, domain.RoleMechanic},
	"parts":           {domain.RoleAdmin, domain.RoleMechanic},
	"suppliers":       {domain.RoleAdmin},
	"customers":       {domain.RoleAdmin, domain.RoleCashier},
	"employees":       {domain.RoleAdmin},
	"payments":        {domain.RoleAdmin, domain.RoleCashier},
	"payment-methods": {domain.RoleAdmin, domain.RoleCashier},
	"reports":         {domain.RoleAdmin},
	"system":          {domain.RoleAdmin},
}

// Allowed reports whether role may use resource. Unknown resources are
// denied for everyone.
func Allowed(role domain.Role, resource string) bool {
	for _, r := range capabilities[resource] {
		if r == role {
			return true
		}
	}
	return false
}
