// file: internals/features/access/grants/model/staff_access_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffAccessModel: pasangan (manager, staff), hanya bermakna ketika
// scope manager untuk modul terkait resolve ke manage_selected.
type StaffAccessModel struct {
	StaffAccessID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_access_id" json:"staff_access_id"`
	StaffAccessSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:staff_access_school_id" json:"staff_access_school_id"`
	StaffAccessManagerID uuid.UUID `gorm:"type:uuid;not null;index:idx_staff_access_pair,unique;column:staff_access_manager_id" json:"staff_access_manager_id"`
	StaffAccessStaffID   uuid.UUID `gorm:"type:uuid;not null;index:idx_staff_access_pair,unique;column:staff_access_staff_id" json:"staff_access_staff_id"`

	StaffAccessCreatedAt time.Time `gorm:"column:staff_access_created_at;autoCreateTime" json:"staff_access_created_at"`
}

func (StaffAccessModel) TableName() string { return "staff_access_grants" }
