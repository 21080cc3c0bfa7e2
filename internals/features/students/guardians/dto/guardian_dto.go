// file: internals/features/students/guardians/dto/guardian_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	model "sekolahku_backend/internals/features/students/guardians/model"
)

type StudentCreateReq struct {
	StudentName     string     `json:"student_name" validate:"required,max=100"`
	StudentGrade    *string    `json:"student_grade,omitempty" validate:"omitempty,max=40"`
	StudentBranchID *uuid.UUID `json:"student_branch_id,omitempty"`
}

func (r *StudentCreateReq) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	if r.StudentGrade != nil {
		g := strings.TrimSpace(*r.StudentGrade)
		if g == "" {
			r.StudentGrade = nil
		} else {
			r.StudentGrade = &g
		}
	}
}

func (r *StudentCreateReq) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID: schoolID,
		StudentBranchID: r.StudentBranchID,
		StudentName:     r.StudentName,
		StudentGrade:    r.StudentGrade,
		StudentIsActive: true,
	}
}

type GuardianCreateReq struct {
	StudentGuardianStudentID uuid.UUID `json:"student_guardian_student_id" validate:"required"`
	StudentGuardianName      string    `json:"student_guardian_name" validate:"required,max=100"`
	StudentGuardianRelation  *string   `json:"student_guardian_relation,omitempty" validate:"omitempty,max=40"`

	StudentGuardianParentPhone    *string `json:"student_guardian_parent_phone,omitempty"`
	StudentGuardianEmergencyPhone *string `json:"student_guardian_emergency_phone,omitempty"`
	StudentGuardianParentEmail    *string `json:"student_guardian_parent_email,omitempty" validate:"omitempty,email"`
}

func (r *GuardianCreateReq) Normalize() {
	r.StudentGuardianName = strings.TrimSpace(r.StudentGuardianName)
	if r.StudentGuardianRelation != nil {
		v := strings.TrimSpace(*r.StudentGuardianRelation)
		if v == "" {
			r.StudentGuardianRelation = nil
		} else {
			r.StudentGuardianRelation = &v
		}
	}
	if r.StudentGuardianParentPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.StudentGuardianParentPhone)
		if p == "" {
			r.StudentGuardianParentPhone = nil
		} else {
			r.StudentGuardianParentPhone = &p
		}
	}
	if r.StudentGuardianEmergencyPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.StudentGuardianEmergencyPhone)
		if p == "" {
			r.StudentGuardianEmergencyPhone = nil
		} else {
			r.StudentGuardianEmergencyPhone = &p
		}
	}
	if r.StudentGuardianParentEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.StudentGuardianParentEmail)
		if e == "" {
			r.StudentGuardianParentEmail = nil
		} else {
			r.StudentGuardianParentEmail = &e
		}
	}
}

func (r *GuardianCreateReq) Validate() error {
	if r.StudentGuardianParentPhone == nil && r.StudentGuardianParentEmail == nil {
		return errors.New("minimal nomor ortu atau email wajib diisi")
	}
	return nil
}

// Phones: nomor ortu + nomor darurat yang terisi, untuk preflight.
func (r *GuardianCreateReq) Phones() []string {
	var out []string
	if r.StudentGuardianParentPhone != nil {
		out = append(out, *r.StudentGuardianParentPhone)
	}
	if r.StudentGuardianEmergencyPhone != nil {
		out = append(out, *r.StudentGuardianEmergencyPhone)
	}
	return out
}

func (r *GuardianCreateReq) ToModel(schoolID uuid.UUID) *model.StudentGuardianModel {
	return &model.StudentGuardianModel{
		StudentGuardianSchoolID:       schoolID,
		StudentGuardianStudentID:      r.StudentGuardianStudentID,
		StudentGuardianName:           r.StudentGuardianName,
		StudentGuardianRelation:       r.StudentGuardianRelation,
		StudentGuardianParentPhone:    r.StudentGuardianParentPhone,
		StudentGuardianEmergencyPhone: r.StudentGuardianEmergencyPhone,
		StudentGuardianParentEmail:    r.StudentGuardianParentEmail,
	}
}
