package auth

// Role is a named group membership attached to a user account. Membership is
// managed externally (account administration); nothing here ever infers a
// role from other state.
type Role string

const (
	RoleAdmin    Role = "Administrador"
	RoleVendor   Role = "Vendedor"
	RoleCourier  Role = "Repartidor"
	RoleCustomer Role = "Cliente"
)
