// file: internals/features/hr/staff/model/staff_user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffUserModel struct {
	// PK
	StaffUserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_user_id" json:"staff_user_id"`

	// Tenant & branch (branch nil = admin global tenant, tanpa filter branch)
	StaffUserSchoolID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_staff_user_school_phone;uniqueIndex:uq_staff_user_school_email;column:staff_user_school_id" json:"staff_user_school_id"`
	StaffUserBranchID *uuid.UUID `gorm:"type:uuid;column:staff_user_branch_id" json:"staff_user_branch_id,omitempty"`

	// Role (RBAC per modul)
	StaffUserRoleID *uuid.UUID `gorm:"type:uuid;column:staff_user_role_id" json:"staff_user_role_id,omitempty"`

	StaffUserName string `gorm:"type:varchar(100);not null;column:staff_user_name" json:"staff_user_name"`

	// Identitas, disimpan ternormalisasi (phone digit-only, email lowercase).
	// Unik per tenant lewat unique index (school_id, phone) & (school_id, email);
	// pre-flight resolver hanya best-effort, index-lah yang otoritatif.
	StaffUserPhone *string `gorm:"type:varchar(20);uniqueIndex:uq_staff_user_school_phone;column:staff_user_phone" json:"staff_user_phone,omitempty"`
	StaffUserEmail *string `gorm:"type:varchar(120);uniqueIndex:uq_staff_user_school_email;column:staff_user_email" json:"staff_user_email,omitempty"`

	StaffUserPasswordHash []byte `gorm:"type:bytea;column:staff_user_password_hash" json:"-"`

	StaffUserPosition *string `gorm:"type:varchar(80);column:staff_user_position" json:"staff_user_position,omitempty"`
	StaffUserIsActive bool    `gorm:"type:boolean;not null;default:true;column:staff_user_is_active" json:"staff_user_is_active"`

	StaffUserCreatedAt time.Time      `gorm:"column:staff_user_created_at;autoCreateTime" json:"staff_user_created_at"`
	StaffUserUpdatedAt time.Time      `gorm:"column:staff_user_updated_at;autoUpdateTime" json:"staff_user_updated_at"`
	StaffUserDeletedAt gorm.DeletedAt `gorm:"column:staff_user_deleted_at;index" json:"staff_user_deleted_at,omitempty"`
}

func (StaffUserModel) TableName() string { return "staff_users" }
