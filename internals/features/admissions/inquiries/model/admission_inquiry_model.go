// file: internals/features/admissions/inquiries/model/admission_inquiry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryStatusNew       = "NEW"
	InquiryStatusContacted = "CONTACTED"
	InquiryStatusEnrolled  = "ENROLLED"
	InquiryStatusClosed    = "CLOSED"
)

// AdmissionInquiryModel: satu pendaftaran calon siswa. Punya sampai empat
// nomor kontak (ortu utama/cadangan/ayah/ibu), semuanya ikut dipindai
// resolver keunikan.
type AdmissionInquiryModel struct {
	AdmissionInquiryID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_inquiry_id" json:"admission_inquiry_id"`
	AdmissionInquirySchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:admission_inquiry_school_id" json:"admission_inquiry_school_id"`

	AdmissionInquiryStudentName string  `gorm:"type:varchar(100);not null;column:admission_inquiry_student_name" json:"admission_inquiry_student_name"`
	AdmissionInquiryParentName  *string `gorm:"type:varchar(100);column:admission_inquiry_parent_name" json:"admission_inquiry_parent_name,omitempty"`

	AdmissionInquiryParentPhone    *string `gorm:"type:varchar(20);index;column:admission_inquiry_parent_phone" json:"admission_inquiry_parent_phone,omitempty"`
	AdmissionInquirySecondaryPhone *string `gorm:"type:varchar(20);column:admission_inquiry_secondary_phone" json:"admission_inquiry_secondary_phone,omitempty"`
	AdmissionInquiryFatherPhone    *string `gorm:"type:varchar(20);column:admission_inquiry_father_phone" json:"admission_inquiry_father_phone,omitempty"`
	AdmissionInquiryMotherPhone    *string `gorm:"type:varchar(20);column:admission_inquiry_mother_phone" json:"admission_inquiry_mother_phone,omitempty"`
	AdmissionInquiryParentEmail    *string `gorm:"type:varchar(120);index;column:admission_inquiry_parent_email" json:"admission_inquiry_parent_email,omitempty"`

	AdmissionInquiryGradeApplied *string `gorm:"type:varchar(40);column:admission_inquiry_grade_applied" json:"admission_inquiry_grade_applied,omitempty"`
	AdmissionInquiryNotes        *string `gorm:"type:text;column:admission_inquiry_notes" json:"admission_inquiry_notes,omitempty"`

	AdmissionInquiryStatus string `gorm:"type:varchar(20);not null;default:'NEW';column:admission_inquiry_status" json:"admission_inquiry_status"`

	AdmissionInquiryCreatedAt time.Time      `gorm:"column:admission_inquiry_created_at;autoCreateTime" json:"admission_inquiry_created_at"`
	AdmissionInquiryUpdatedAt time.Time      `gorm:"column:admission_inquiry_updated_at;autoUpdateTime" json:"admission_inquiry_updated_at"`
	AdmissionInquiryDeletedAt gorm.DeletedAt `gorm:"column:admission_inquiry_deleted_at;index" json:"admission_inquiry_deleted_at,omitempty"`
}

func (AdmissionInquiryModel) TableName() string { return "admission_inquiries" }
