package postgres

import (
	"context"
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"
)

// PermissionRepo reads the role_permissions grid (one row per role and module).
type PermissionRepo struct {
	q Querier
}

var _ interfaces.IPermissionRepository = (*PermissionRepo)(nil)

func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

func (r *PermissionRepo) GetByRole(ctx context.Context, role string) (entities.PermissionMap, error) {
	rows, err := r.q.Query(ctx, `
		SELECT module, can_view, can_create, can_edit, can_delete, can_export
		FROM role_permissions WHERE role = $1`, role)
	if err != nil {
		return nil, fmt.Errorf("role permissions: %w", err)
	}
	defer rows.Close()

	out := entities.PermissionMap{}
	for rows.Next() {
		var module string
		var p entities.ModulePermissions
		if err := rows.Scan(&module, &p.View, &p.Create, &p.Edit, &p.Delete, &p.Export); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		out[entities.Module(module)] = p
	}
	return out, rows.Err()
}
