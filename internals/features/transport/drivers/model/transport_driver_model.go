// file: internals/features/transport/drivers/model/transport_driver_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransportDriverModel struct {
	TransportDriverID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:transport_driver_id" json:"transport_driver_id"`
	TransportDriverSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_transport_driver_school_phone;uniqueIndex:uq_transport_driver_school_email;column:transport_driver_school_id" json:"transport_driver_school_id"`

	TransportDriverName string `gorm:"type:varchar(100);not null;column:transport_driver_name" json:"transport_driver_name"`

	// Unik per tenant (school_id, phone) & (school_id, email), sama seperti
	// staff_users; race yang lolos pre-flight mendarat di 23505.
	TransportDriverPhone *string `gorm:"type:varchar(20);uniqueIndex:uq_transport_driver_school_phone;column:transport_driver_phone" json:"transport_driver_phone,omitempty"`
	TransportDriverEmail *string `gorm:"type:varchar(120);uniqueIndex:uq_transport_driver_school_email;column:transport_driver_email" json:"transport_driver_email,omitempty"`

	TransportDriverLicenseNo *string `gorm:"type:varchar(40);column:transport_driver_license_no" json:"transport_driver_license_no,omitempty"`

	// Cross-reference ke staff_users kalau driver juga terdaftar sebagai staf
	// di tenant yang sama (pengecualian linkable, bukan duplikat).
	TransportDriverUserID *uuid.UUID `gorm:"type:uuid;index;column:transport_driver_user_id" json:"transport_driver_user_id,omitempty"`

	TransportDriverIsActive bool `gorm:"type:boolean;not null;default:true;column:transport_driver_is_active" json:"transport_driver_is_active"`

	TransportDriverCreatedAt time.Time      `gorm:"column:transport_driver_created_at;autoCreateTime" json:"transport_driver_created_at"`
	TransportDriverUpdatedAt time.Time      `gorm:"column:transport_driver_updated_at;autoUpdateTime" json:"transport_driver_updated_at"`
	TransportDriverDeletedAt gorm.DeletedAt `gorm:"column:transport_driver_deleted_at;index" json:"transport_driver_deleted_at,omitempty"`
}

func (TransportDriverModel) TableName() string { return "transport_drivers" }
