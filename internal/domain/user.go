package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCashier  Role = "cashier"
	RoleMechanic Role = "mechanic"
)

// User is one of the predefined operators offered by the login picker.
// There are no credentials: selecting a username is the whole login flow.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username" validate:"required"`
	Role     Role   `json:"role"`
}
