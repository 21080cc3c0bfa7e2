// file: internals/features/tenancy/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel: satu tenant. Seluruh data lain dipartisi per school_id.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	SchoolName string  `gorm:"type:varchar(120);not null;column:school_name" json:"school_name"`
	SchoolSlug string  `gorm:"type:varchar(120);not null;uniqueIndex;column:school_slug" json:"school_slug"`
	SchoolCity *string `gorm:"type:varchar(80);column:school_city" json:"school_city,omitempty"`

	SchoolIsActive bool `gorm:"type:boolean;not null;default:true;column:school_is_active" json:"school_is_active"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

// BranchModel: sub-unit tenant (kampus/cabang), filter akses kedua
// setelah school_id. Staf dengan branch hanya melihat branch-nya.
type BranchModel struct {
	BranchID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:branch_id" json:"branch_id"`
	BranchSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:branch_school_id" json:"branch_school_id"`

	BranchName    string  `gorm:"type:varchar(120);not null;column:branch_name" json:"branch_name"`
	BranchAddress *string `gorm:"type:text;column:branch_address" json:"branch_address,omitempty"`

	BranchIsActive bool `gorm:"type:boolean;not null;default:true;column:branch_is_active" json:"branch_is_active"`

	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time      `gorm:"column:branch_updated_at;autoUpdateTime" json:"branch_updated_at"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"branch_deleted_at,omitempty"`
}

func (BranchModel) TableName() string { return "branches" }
