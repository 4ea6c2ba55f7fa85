package domain

// ActivityStatus is the active/inactive flag shared by suppliers,
// employees and payment methods.
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "active"
	StatusInactive ActivityStatus = "inactive"
)
