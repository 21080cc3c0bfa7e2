// file: internals/features/access/roles/service/scope.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	grantModel "sekolahku_backend/internals/features/access/grants/model"
	roleModel "sekolahku_backend/internals/features/access/roles/model"
)

// Scope: seberapa lebar akses sebuah role pada satu modul.
type Scope string

const (
	ScopeNone           Scope = "none"
	ScopeViewAll        Scope = "view_all"
	ScopeManageAll      Scope = "manage_all"
	ScopeManageOwn      Scope = "manage_own"
	ScopeManageSelected Scope = "manage_selected"
)

// ResolveScope mereduksi action set tersimpan menjadi tepat satu Scope.
// Total & deterministik: kombinasi apa pun (termasuk data lama yang
// inkonsisten) tetap menghasilkan satu nilai lewat precedence -
// manage > manage_own > manage_selected > view. Tidak pernah error.
// manage meng-imply view.
func ResolveScope(actions []string) Scope {
	has := make(map[string]bool, len(actions))
	for _, a := range actions {
		has[a] = true
	}
	switch {
	case has[constants.ActionManage]:
		return ScopeManageAll
	case has[constants.ActionManageOwn]:
		return ScopeManageOwn
	case has[constants.ActionManageSelected]:
		return ScopeManageSelected
	case has[constants.ActionView]:
		return ScopeViewAll
	default:
		return ScopeNone
	}
}

// CanView: semua scope selain none boleh membaca.
func (s Scope) CanView() bool { return s != ScopeNone }

// CanManage: boleh menulis (lebar target ditentukan Materialize).
func (s Scope) CanManage() bool {
	return s == ScopeManageAll || s == ScopeManageOwn || s == ScopeManageSelected
}

// DominantAction: dipakai editor role saat menyimpan, satu aksi scope
// menang, sisanya dibuang, supaya invariant eksklusivitas terjaga di DB
// (bukan cuma di UI).
func DominantAction(actions []string) string {
	switch ResolveScope(actions) {
	case ScopeManageAll:
		return constants.ActionManage
	case ScopeManageOwn:
		return constants.ActionManageOwn
	case ScopeManageSelected:
		return constants.ActionManageSelected
	case ScopeViewAll:
		return constants.ActionView
	}
	return ""
}

// AccessSet: hasil materialisasi scope jadi filter query.
// All=true berarti tanpa filter ID (tetap kena filter branch/tenant).
type AccessSet struct {
	All bool
	IDs []uuid.UUID
}

// MaterializeScope menurunkan AccessSet dari scope:
// - view_all/manage_all → semua row (dalam tenant/branch)
// - manage_own → hanya diri sendiri
// - manage_selected → daftar dari grant (listSelected)
// - none → kosong
// listSelected hanya dipanggil untuk manage_selected.
func MaterializeScope(scope Scope, userID uuid.UUID, listSelected func() ([]uuid.UUID, error)) (AccessSet, error) {
	switch scope {
	case ScopeViewAll, ScopeManageAll:
		return AccessSet{All: true}, nil
	case ScopeManageOwn:
		return AccessSet{IDs: []uuid.UUID{userID}}, nil
	case ScopeManageSelected:
		if listSelected == nil {
			return AccessSet{}, errors.New("manage_selected butuh sumber grant")
		}
		ids, err := listSelected()
		if err != nil {
			return AccessSet{}, err
		}
		return AccessSet{IDs: ids}, nil
	default:
		return AccessSet{}, nil
	}
}

// Contains: apakah target masuk access set.
func (a AccessSet) Contains(id uuid.UUID) bool {
	if a.All {
		return true
	}
	for _, v := range a.IDs {
		if v == id {
			return true
		}
	}
	return false
}

// BranchScope: filter branch yang dievaluasi SEBELUM scope modul.
// User dengan branch → terkunci ke branch-nya; tanpa branch (admin
// global tenant) → tanpa filter.
func BranchScope(branchID *uuid.UUID, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if branchID == nil {
			return db
		}
		return db.Where(column+" = ?", *branchID)
	}
}

/* =========================
   DB-bound resolver
========================= */

type AccessService struct {
	DB *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{DB: db}
}

// ResolveModuleScope membaca action set role untuk satu modul lalu
// mereduksinya. Role tanpa baris untuk modul tsb = none.
func (s *AccessService) ResolveModuleScope(ctx context.Context, roleID uuid.UUID, module string) (Scope, error) {
	var perm roleModel.RoleModulePermissionModel
	err := s.DB.WithContext(ctx).
		Where("role_module_permission_role_id = ? AND role_module_permission_module = ?", roleID, module).
		Take(&perm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScopeNone, nil
		}
		return ScopeNone, err
	}
	return ResolveScope(perm.RoleModulePermissionActions), nil
}

// MaterializeStaffScope: AccessSet staf yang boleh dikelola user pada
// modul tsb. manage_selected membaca staff_access_grants.
func (s *AccessService) MaterializeStaffScope(ctx context.Context, scope Scope, userID uuid.UUID) (AccessSet, error) {
	return MaterializeScope(scope, userID, func() ([]uuid.UUID, error) {
		var ids []uuid.UUID
		err := s.DB.WithContext(ctx).
			Model(&grantModel.StaffAccessModel{}).
			Where("staff_access_manager_id = ?", userID).
			Pluck("staff_access_staff_id", &ids).Error
		return ids, err
	})
}
