// file: internals/features/access/roles/model/role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type RoleModel struct {
	// PK
	RoleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:role_id" json:"role_id"`

	// Tenant
	RoleSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:role_school_id" json:"role_school_id"`

	RoleName        string  `gorm:"type:varchar(80);not null;column:role_name" json:"role_name"`
	RoleDescription *string `gorm:"type:text;column:role_description" json:"role_description,omitempty"`

	RoleCreatedAt time.Time      `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt time.Time      `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at"`
	RoleDeletedAt gorm.DeletedAt `gorm:"column:role_deleted_at;index" json:"role_deleted_at,omitempty"`

	// Relasi
	RolePermissions []RoleModulePermissionModel `gorm:"foreignKey:RoleModulePermissionRoleID;references:RoleID" json:"role_permissions,omitempty"`
}

func (RoleModel) TableName() string { return "roles" }

// RoleModulePermissionModel: action set per modul untuk sebuah role.
// Invariant: maksimal satu aksi scope (view/manage/manage_own/manage_selected)
// tersimpan per modul, dijaga DominantAction saat save; ResolveScope tetap
// defensif terhadap data lama yang menyimpan kombinasi.
type RoleModulePermissionModel struct {
	RoleModulePermissionID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:role_module_permission_id" json:"role_module_permission_id"`
	RoleModulePermissionRoleID uuid.UUID      `gorm:"type:uuid;not null;index;column:role_module_permission_role_id" json:"role_module_permission_role_id"`
	RoleModulePermissionModule string         `gorm:"type:varchar(50);not null;column:role_module_permission_module" json:"role_module_permission_module"`
	RoleModulePermissionActions pq.StringArray `gorm:"type:text[];not null;column:role_module_permission_actions" json:"role_module_permission_actions"`

	RoleModulePermissionCreatedAt time.Time `gorm:"column:role_module_permission_created_at;autoCreateTime" json:"role_module_permission_created_at"`
}

func (RoleModulePermissionModel) TableName() string { return "role_module_permissions" }
