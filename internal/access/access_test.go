package access

import (
	"testing"

	"bengkel/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	// every role sees the dashboard and orders
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleCashier, domain.RoleMechanic} {
		assert.True(t, Allowed(role, "dashboard"), "role %s", role)
		assert.True(t, Allowed(role, "orders"), "role %s", role)
	}

	// admin-only screens
	for _, resource := range []string{"suppliers", "employees", "reports", "system"} {
		assert.True(t, Allowed(domain.RoleAdmin, resource))
		assert.False(t, Allowed(domain.RoleCashier, resource))
		assert.False(t, Allowed(domain.RoleMechanic, resource))
	}

	// mechanics manage parts but not customers or payments
	assert.True(t, Allowed(domain.RoleMechanic, "parts"))
	assert.False(t, Allowed(domain.RoleMechanic, "customers"))
	assert.False(t, Allowed(domain.RoleMechanic, "payments"))

	// cashiers handle customers and payments but not parts
	assert.True(t, Allowed(domain.RoleCashier, "customers"))
	assert.True(t, Allowed(domain.RoleCashier, "payments"))
	assert.True(t, Allowed(domain.RoleCashier, "payment-methods"))
	assert.False(t, Allowed(domain.RoleCashier, "parts"))

	// unknown resources are denied outright
	assert.False(t, Allowed(domain.RoleAdmin, "nonexistent"))
}
