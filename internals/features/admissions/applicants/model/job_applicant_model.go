// file: internals/features/admissions/applicants/model/job_applicant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ApplicantStatusApplied     = "APPLIED"
	ApplicantStatusInterviewed = "INTERVIEWED"
	ApplicantStatusHired       = "HIRED"
	ApplicantStatusRejected    = "REJECTED"
)

type JobApplicantModel struct {
	JobApplicantID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:job_applicant_id" json:"job_applicant_id"`
	JobApplicantSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:job_applicant_school_id" json:"job_applicant_school_id"`

	JobApplicantName     string  `gorm:"type:varchar(100);not null;column:job_applicant_name" json:"job_applicant_name"`
	JobApplicantPhone    *string `gorm:"type:varchar(20);index;column:job_applicant_phone" json:"job_applicant_phone,omitempty"`
	JobApplicantEmail    *string `gorm:"type:varchar(120);index;column:job_applicant_email" json:"job_applicant_email,omitempty"`
	JobApplicantPosition *string `gorm:"type:varchar(80);column:job_applicant_position" json:"job_applicant_position,omitempty"`

	JobApplicantStatus string `gorm:"type:varchar(20);not null;default:'APPLIED';column:job_applicant_status" json:"job_applicant_status"`

	JobApplicantCreatedAt time.Time      `gorm:"column:job_applicant_created_at;autoCreateTime" json:"job_applicant_created_at"`
	JobApplicantUpdatedAt time.Time      `gorm:"column:job_applicant_updated_at;autoUpdateTime" json:"job_applicant_updated_at"`
	JobApplicantDeletedAt gorm.DeletedAt `gorm:"column:job_applicant_deleted_at;index" json:"job_applicant_deleted_at,omitempty"`
}

func (JobApplicantModel) TableName() string { return "job_applicants" }
