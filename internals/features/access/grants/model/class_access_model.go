// file: internals/features/access/grants/model/class_access_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassAccessModel: grant eksplisit per (user, classroom).
// Invariant: write/edit/delete = true ⇒ read = true (dipaksa saat save).
// Disimpan bulk-replace per user: delete lama lalu insert baru dalam
// satu transaksi.
type ClassAccessModel struct {
	ClassAccessID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_access_id" json:"class_access_id"`
	ClassAccessSchoolID    uuid.UUID `gorm:"type:uuid;not null;index;column:class_access_school_id" json:"class_access_school_id"`
	ClassAccessUserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_class_access_user_class,unique;column:class_access_user_id" json:"class_access_user_id"`
	ClassAccessClassroomID uuid.UUID `gorm:"type:uuid;not null;index:idx_class_access_user_class,unique;column:class_access_classroom_id" json:"class_access_classroom_id"`

	ClassAccessCanRead   bool `gorm:"type:boolean;not null;default:false;column:class_access_can_read" json:"class_access_can_read"`
	ClassAccessCanWrite  bool `gorm:"type:boolean;not null;default:false;column:class_access_can_write" json:"class_access_can_write"`
	ClassAccessCanEdit   bool `gorm:"type:boolean;not null;default:false;column:class_access_can_edit" json:"class_access_can_edit"`
	ClassAccessCanDelete bool `gorm:"type:boolean;not null;default:false;column:class_access_can_delete" json:"class_access_can_delete"`

	ClassAccessCreatedAt time.Time `gorm:"column:class_access_created_at;autoCreateTime" json:"class_access_created_at"`
}

func (ClassAccessModel) TableName() string { return "class_access_grants" }
