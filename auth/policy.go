package auth

// Action is one of the five CRUD verbs every resource endpoint exposes.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// Resource names a protected collection.
type Resource string

const (
	ResourceCategory      Resource = "categorias"
	ResourceSubcategory   Resource = "subcategorias"
	ResourceProduct       Resource = "productos"
	ResourceOrder         Resource = "pedidos"
	ResourceInvoice       Resource = "facturas"
	ResourceRoute         Resource = "rutas"
	ResourceDelivery      Resource = "entregas"
	ResourceCustomerRoute Resource = "clientes-ruta"
	ResourceConfiguration Resource = "configuracion"
	ResourceUser          Resource = "usuarios"
)

// Predicate decides whether the caller may perform an action. A nil Claims
// value means the request carried no (valid) token.
type Predicate func(claims *Claims) bool

func anyone(_ *Claims) bool { return true }

func authenticated(claims *Claims) bool { return claims != nil }

func hasAny(roles ...Role) Predicate {
	return func(claims *Claims) bool {
		return claims != nil && claims.HasAnyRole(roles...)
	}
}

// policies is the full permission matrix, one predicate per (resource,
// action). Row-level narrowing (a customer only sees their own orders) is
// applied by the order handlers on top of this table.
//
// Order update/destroy is Admin or Vendor, matching how every other
// resource combines its roles.
var policies = map[Resource]map[Action]Predicate{
	ResourceCategory: {
		ActionList:     anyone,
		ActionRetrieve: anyone,
		ActionCreate:   hasAny(RoleAdmin),
		ActionUpdate:   hasAny(RoleAdmin),
		ActionDestroy:  hasAny(RoleAdmin),
	},
	ResourceSubcategory: {
		ActionList:     anyone,
		ActionRetrieve: anyone,
		ActionCreate:   hasAny(RoleAdmin),
		ActionUpdate:   hasAny(RoleAdmin),
		ActionDestroy:  hasAny(RoleAdmin),
	},
	ResourceProduct: {
		ActionList:     anyone,
		ActionRetrieve: anyone,
		ActionCreate:   hasAny(RoleVendor, RoleAdmin),
		ActionUpdate:   hasAny(RoleVendor, RoleAdmin),
		ActionDestroy:  hasAny(RoleVendor, RoleAdmin),
	},
	ResourceOrder: {
		ActionList:     hasAny(RoleAdmin, RoleVendor, RoleCustomer),
		ActionRetrieve: hasAny(RoleAdmin, RoleVendor, RoleCustomer),
		ActionCreate:   hasAny(RoleCustomer),
		ActionUpdate:   hasAny(RoleAdmin, RoleVendor),
		ActionDestroy:  hasAny(RoleAdmin, RoleVendor),
	},
	ResourceInvoice: {
		ActionList:     hasAny(RoleAdmin, RoleVendor),
		ActionRetrieve: hasAny(RoleAdmin, RoleVendor),
		ActionCreate:   hasAny(RoleAdmin, RoleVendor),
		ActionUpdate:   hasAny(RoleAdmin, RoleVendor),
		ActionDestroy:  hasAny(RoleAdmin, RoleVendor),
	},
	ResourceRoute: {
		ActionList:     anyone,
		ActionRetrieve: anyone,
		ActionCreate:   hasAny(RoleAdmin),
		ActionUpdate:   hasAny(RoleAdmin),
		ActionDestroy:  hasAny(RoleAdmin),
	},
	ResourceDelivery: {
		ActionList:     hasAny(RoleAdmin, RoleCourier),
		ActionRetrieve: hasAny(RoleAdmin, RoleCourier),
		ActionCreate:   hasAny(RoleAdmin, RoleCourier),
		ActionUpdate:   hasAny(RoleAdmin, RoleCourier),
		ActionDestroy:  hasAny(RoleAdmin, RoleCourier),
	},
	ResourceCustomerRoute: {
		ActionList:     hasAny(RoleAdmin, RoleCustomer),
		ActionRetrieve: hasAny(RoleAdmin, RoleCustomer),
		ActionCreate:   hasAny(RoleAdmin, RoleCustomer),
		ActionUpdate:   hasAny(RoleAdmin, RoleCustomer),
		ActionDestroy:  hasAny(RoleAdmin, RoleCustomer),
	},
	ResourceConfiguration: {
		ActionList:     authenticated,
		ActionRetrieve: authenticated,
		ActionUpdate:   hasAny(RoleAdmin),
	},
	ResourceUser: {
		ActionList:     hasAny(RoleAdmin),
		ActionRetrieve: hasAny(RoleAdmin),
		ActionCreate:   hasAny(RoleAdmin),
		ActionUpdate:   hasAny(RoleAdmin),
		ActionDestroy:  hasAny(RoleAdmin),
	},
}

// Allowed evaluates the policy table once, at the request boundary. Unknown
// resource/action pairs deny.
func Allowed(claims *Claims, resource Resource, action Action) bool {
	actions, ok := policies[resource]
	if !ok {
		return false
	}
	pred, ok := actions[action]
	if !ok {
		return false
	}
	return pred(claims)
}
