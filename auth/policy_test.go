package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func claimsWith(roles ...Role) *Claims {
	groups := make([]string, len(roles))
	for i, r := range roles {
		groups[i] = string(r)
	}
	return &Claims{Groups: groups}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		claims   *Claims
		resource Resource
		action   Action
		want     bool
	}{
		{"anonymous can list products", nil, ResourceProduct, ActionList, true},
		{"anonymous cannot create products", nil, ResourceProduct, ActionCreate, false},
		{"customer cannot create products", claimsWith(RoleCustomer), ResourceProduct, ActionCreate, false},
		{"vendor can create products", claimsWith(RoleVendor), ResourceProduct, ActionCreate, true},
		{"admin can create products", claimsWith(RoleAdmin), ResourceProduct, ActionCreate, true},

		{"customer can create orders", claimsWith(RoleCustomer), ResourceOrder, ActionCreate, true},
		{"vendor cannot create orders", claimsWith(RoleVendor), ResourceOrder, ActionCreate, false},
		{"vendor alone can update orders", claimsWith(RoleVendor), ResourceOrder, ActionUpdate, true},
		{"admin alone can update orders", claimsWith(RoleAdmin), ResourceOrder, ActionUpdate, true},
		{"customer cannot update orders", claimsWith(RoleCustomer), ResourceOrder, ActionUpdate, false},
		{"courier cannot list orders", claimsWith(RoleCourier), ResourceOrder, ActionList, false},

		{"anonymous can read routes", nil, ResourceRoute, ActionRetrieve, true},
		{"courier cannot create routes", claimsWith(RoleCourier), ResourceRoute, ActionCreate, false},
		{"admin can create routes", claimsWith(RoleAdmin), ResourceRoute, ActionCreate, true},

		{"courier manages deliveries", claimsWith(RoleCourier), ResourceDelivery, ActionUpdate, true},
		{"customer cannot touch deliveries", claimsWith(RoleCustomer), ResourceDelivery, ActionList, false},

		{"customer manages own route registrations", claimsWith(RoleCustomer), ResourceCustomerRoute, ActionCreate, true},
		{"vendor cannot touch route registrations", claimsWith(RoleVendor), ResourceCustomerRoute, ActionList, false},

		{"anonymous cannot read configuration", nil, ResourceConfiguration, ActionRetrieve, false},
		{"any authenticated user reads configuration", claimsWith(RoleCourier), ResourceConfiguration, ActionRetrieve, true},
		{"only admin updates configuration", claimsWith(RoleVendor), ResourceConfiguration, ActionUpdate, false},
		{"configuration has no create action", claimsWith(RoleAdmin), ResourceConfiguration, ActionCreate, false},

		{"vendor cannot manage accounts", claimsWith(RoleVendor), ResourceUser, ActionCreate, false},
		{"admin manages accounts", claimsWith(RoleAdmin), ResourceUser, ActionDestroy, true},

		{"multi-role user gets the union", claimsWith(RoleCustomer, RoleVendor), ResourceProduct, ActionCreate, true},
		{"unknown resource denies", claimsWith(RoleAdmin), Resource("bodegas"), ActionList, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.claims, tt.resource, tt.action))
		})
	}
}

func TestSuperuserFlagGrantsNothing(t *testing.T) {
	claims := &Claims{IsSuperuser: true}
	assert.False(t, Allowed(claims, ResourceProduct, ActionCreate))
	assert.False(t, Allowed(claims, ResourceUser, ActionList))
}
