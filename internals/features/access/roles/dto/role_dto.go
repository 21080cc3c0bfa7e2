// file: internals/features/access/roles/dto/role_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/access/roles/model"
	service "sekolahku_backend/internals/features/access/roles/service"
)

/* =========================================================
   REQUEST: CREATE / UPDATE
   ========================================================= */

type RoleModulePermissionReq struct {
	Module  string   `json:"module" validate:"required"`
	Actions []string `json:"actions" validate:"required,min=1"`
}

type RoleCreateReq struct {
	RoleName        string                    `json:"role_name" validate:"required,max=80"`
	RoleDescription *string                   `json:"role_description,omitempty"`
	RolePermissions []RoleModulePermissionReq `json:"role_permissions"`
}

// Normalize merapikan input DAN menegakkan eksklusivitas scope:
// satu modul hanya menyimpan satu aksi scope (yang dominan).
// Ini invariant tersimpan, bukan sekadar perilaku UI.
func (r *RoleCreateReq) Normalize() {
	r.RoleName = strings.TrimSpace(r.RoleName)
	if r.RoleDescription != nil {
		d := strings.TrimSpace(*r.RoleDescription)
		if d == "" {
			r.RoleDescription = nil
		} else {
			r.RoleDescription = &d
		}
	}

	seen := make(map[string]bool, len(r.RolePermissions))
	out := r.RolePermissions[:0]
	for _, p := range r.RolePermissions {
		p.Module = strings.ToLower(strings.TrimSpace(p.Module))
		if p.Module == "" || seen[p.Module] {
			continue
		}
		for i := range p.Actions {
			p.Actions[i] = strings.ToLower(strings.TrimSpace(p.Actions[i]))
		}
		if dom := service.DominantAction(p.Actions); dom != "" {
			p.Actions = []string{dom}
		} else {
			p.Actions = nil
		}
		seen[p.Module] = true
		out = append(out, p)
	}
	r.RolePermissions = out
}

func (r *RoleCreateReq) Validate() error {
	for _, p := range r.RolePermissions {
		if !constants.IsKnownModule(p.Module) {
			return errors.New("modul tidak dikenal: " + p.Module)
		}
		for _, a := range p.Actions {
			if !constants.IsKnownAction(a) {
				return errors.New("aksi tidak dikenal: " + a)
			}
		}
	}
	return nil
}

func (r *RoleCreateReq) ToModel(schoolID uuid.UUID) *model.RoleModel {
	m := &model.RoleModel{
		RoleSchoolID:    schoolID,
		RoleName:        r.RoleName,
		RoleDescription: r.RoleDescription,
	}
	for _, p := range r.RolePermissions {
		if len(p.Actions) == 0 {
			continue
		}
		m.RolePermissions = append(m.RolePermissions, model.RoleModulePermissionModel{
			RoleModulePermissionModule:  p.Module,
			RoleModulePermissionActions: pq.StringArray(p.Actions),
		})
	}
	return m
}

type RoleUpdateReq = RoleCreateReq

/* =========================================================
   RESPONSE
   ========================================================= */

type RoleModulePermissionResp struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
	Scope   string   `json:"scope"` // hasil reduksi, untuk renderer UI
}

type RoleResp struct {
	RoleID          uuid.UUID                  `json:"role_id"`
	RoleName        string                     `json:"role_name"`
	RoleDescription *string                    `json:"role_description,omitempty"`
	RolePermissions []RoleModulePermissionResp `json:"role_permissions"`
}

func FromModel(m *model.RoleModel) RoleResp {
	resp := RoleResp{
		RoleID:          m.RoleID,
		RoleName:        m.RoleName,
		RoleDescription: m.RoleDescription,
		RolePermissions: make([]RoleModulePermissionResp, 0, len(m.RolePermissions)),
	}
	for _, p := range m.RolePermissions {
		resp.RolePermissions = append(resp.RolePermissions, RoleModulePermissionResp{
			Module:  p.RoleModulePermissionModule,
			Actions: p.RoleModulePermissionActions,
			Scope:   string(service.ResolveScope(p.RoleModulePermissionActions)),
		})
	}
	return resp
}
