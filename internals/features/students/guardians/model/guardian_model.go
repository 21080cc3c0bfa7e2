// file: internals/features/students/guardians/model/guardian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel: siswa aktif (hasil enroll dari pendaftaran).
type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`
	StudentBranchID *uuid.UUID `gorm:"type:uuid;column:student_branch_id" json:"student_branch_id,omitempty"`

	StudentName  string  `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
	StudentGrade *string `gorm:"type:varchar(40);column:student_grade" json:"student_grade,omitempty"`

	StudentIsActive bool `gorm:"type:boolean;not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

// StudentGuardianModel: wali siswa. Nomor ortu & nomor darurat dua-duanya
// dipindai resolver keunikan; wali TIDAK pernah linkable dengan entitas lain.
type StudentGuardianModel struct {
	StudentGuardianID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_guardian_id" json:"student_guardian_id"`
	StudentGuardianSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:student_guardian_school_id" json:"student_guardian_school_id"`
	StudentGuardianStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_guardian_student_id" json:"student_guardian_student_id"`

	StudentGuardianName     string  `gorm:"type:varchar(100);not null;column:student_guardian_name" json:"student_guardian_name"`
	StudentGuardianRelation *string `gorm:"type:varchar(40);column:student_guardian_relation" json:"student_guardian_relation,omitempty"`

	StudentGuardianParentPhone    *string `gorm:"type:varchar(20);index;column:student_guardian_parent_phone" json:"student_guardian_parent_phone,omitempty"`
	StudentGuardianEmergencyPhone *string `gorm:"type:varchar(20);column:student_guardian_emergency_phone" json:"student_guardian_emergency_phone,omitempty"`
	StudentGuardianParentEmail    *string `gorm:"type:varchar(120);index;column:student_guardian_parent_email" json:"student_guardian_parent_email,omitempty"`

	StudentGuardianCreatedAt time.Time      `gorm:"column:student_guardian_created_at;autoCreateTime" json:"student_guardian_created_at"`
	StudentGuardianUpdatedAt time.Time      `gorm:"column:student_guardian_updated_at;autoUpdateTime" json:"student_guardian_updated_at"`
	StudentGuardianDeletedAt gorm.DeletedAt `gorm:"column:student_guardian_deleted_at;index" json:"student_guardian_deleted_at,omitempty"`
}

func (StudentGuardianModel) TableName() string { return "student_guardians" }
