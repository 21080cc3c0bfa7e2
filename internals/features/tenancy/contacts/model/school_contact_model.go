// file: internals/features/tenancy/contacts/model/school_contact_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolContactModel: kontak resmi sekolah (front office, humas, dsb).
// Phone/email disimpan ternormalisasi dan ikut dicek resolver keunikan.
type SchoolContactModel struct {
	SchoolContactID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_contact_id" json:"school_contact_id"`
	SchoolContactSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:school_contact_school_id" json:"school_contact_school_id"`

	SchoolContactName  string  `gorm:"type:varchar(100);not null;column:school_contact_name" json:"school_contact_name"`
	SchoolContactRole  *string `gorm:"type:varchar(80);column:school_contact_role" json:"school_contact_role,omitempty"`
	SchoolContactPhone *string `gorm:"type:varchar(20);index;column:school_contact_phone" json:"school_contact_phone,omitempty"`
	SchoolContactEmail *string `gorm:"type:varchar(120);index;column:school_contact_email" json:"school_contact_email,omitempty"`

	SchoolContactCreatedAt time.Time      `gorm:"column:school_contact_created_at;autoCreateTime" json:"school_contact_created_at"`
	SchoolContactUpdatedAt time.Time      `gorm:"column:school_contact_updated_at;autoUpdateTime" json:"school_contact_updated_at"`
	SchoolContactDeletedAt gorm.DeletedAt `gorm:"column:school_contact_deleted_at;index" json:"school_contact_deleted_at,omitempty"`
}

func (SchoolContactModel) TableName() string { return "school_contacts" }
