package entities

// Module names the console area a permission applies to.
type Module string

const (
	ModuleCustomers     Module = "customers"
	ModuleVehicles      Module = "vehicles"
	ModuleBudgets       Module = "budgets"
	ModuleServiceOrders Module = "service_orders"
	ModuleReceivables   Module = "receivables"
	ModulePayables      Module = "payables"
	ModuleCommissions   Module = "commissions"
	ModuleDashboard     Module = "dashboard"
	ModuleUsers         Module = "users"
	ModuleAuditLogs     Module = "audit_logs"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

type ModulePermissions struct {
	View   bool `json:"view"`
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
	Export bool `json:"export"`
}

func (p ModulePermissions) Allows(a Action) bool {
	switch a {
	case ActionView:
		return p.View
	case ActionCreate:
		return p.Create
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Delete
	case ActionExport:
		return p.Export
	}
	return false
}

// PermissionMap is the per-role module → action grid, read once per session.
type PermissionMap map[Module]ModulePermissions

func (m PermissionMap) Can(module Module, action Action) bool {
	if m == nil {
		return false
	}
	return m[module].Allows(action)
}
