// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Default role for registered shoppers
	RoleCustomer UserRole = "customer"

	// Can view customer accounts to resolve support tickets
	RoleCustomerSupport UserRole = "customer_support"

	// Can list products for sale under their own account
	RoleSeller UserRole = "seller"
)

// AllRoles lists every assignable role, used for payload validation.
var AllRoles = []UserRole{RoleAdmin, RoleCustomer, RoleCustomerSupport, RoleSeller}

// IsValid reports whether the role is one of the assignable roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleCustomerSupport, RoleSeller:
		return true
	default:
		return false
	}
}

// RoleNames returns the role set as plain strings, for validator messages.
func RoleNames() []string {
	names := make([]string, 0, len(AllRoles))
	for _, role := range AllRoles {
		names = append(names, string(role))
	}
	return names
}
