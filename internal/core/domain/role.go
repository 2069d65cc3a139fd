package domain

// Role is the closed set of staff roles. An empty Role means the caller is
// unauthenticated (public visitor) and passes no gate.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSales     Role = "sales"
	RoleExecutive Role = "executive"
)

// DefaultRole is assigned to every registration except the bootstrap admin.
const DefaultRole = RoleSales

// Valid reports whether r is one of the known staff roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleExecutive:
		return true
	}
	return false
}

// Action names a protected capability. Handlers are gated by action, never
// by ad hoc role lists.
type Action string

const (
	ActionCatalogManage     Action = "catalog.manage"
	ActionQuotesView        Action = "quotes.view"
	ActionQuotesManage      Action = "quotes.manage"
	ActionUsersView         Action = "users.view"
	ActionUsersManage       Action = "users.manage"
	ActionNotificationsView Action = "notifications.view"
	ActionSettingsView      Action = "settings.view"
	ActionSettingsManage    Action = "settings.manage"
)

// capabilities is the single authorization table: action → allowed roles.
// Membership is exact; there is no role hierarchy.
var capabilities = map[Action]map[Role]struct{}{
	ActionCatalogManage:     roleSet(RoleAdmin, RoleSales),
	ActionQuotesView:        roleSet(RoleAdmin, RoleSales),
	ActionQuotesManage:      roleSet(RoleAdmin, RoleSales),
	ActionUsersView:         roleSet(RoleAdmin),
	ActionUsersManage:       roleSet(RoleAdmin),
	ActionNotificationsView: roleSet(RoleAdmin, RoleSales, RoleExecutive),
	ActionSettingsView:      roleSet(RoleAdmin, RoleSales, RoleExecutive),
	ActionSettingsManage:    roleSet(RoleAdmin),
}

func roleSet(roles ...Role) map[Role]struct{} {
	s := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Authorize reports whether role may perform action. Unknown actions and
// unknown roles are always denied.
func Authorize(role Role, action Action) bool {
	allowed, ok := capabilities[action]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}
