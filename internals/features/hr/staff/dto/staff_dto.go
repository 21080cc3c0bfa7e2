// file: internals/features/hr/staff/dto/staff_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/hr/staff/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
)

/* =========================================================
   REQUEST: CREATE STAFF
   ========================================================= */

type StaffCreateReq struct {
	StaffUserName     string     `json:"staff_user_name" validate:"required,max=100"`
	StaffUserPhone    *string    `json:"staff_user_phone,omitempty"`
	StaffUserEmail    *string    `json:"staff_user_email,omitempty" validate:"omitempty,email"`
	StaffUserPassword string     `json:"staff_user_password" validate:"required,min=8"`
	StaffUserBranchID *uuid.UUID `json:"staff_user_branch_id,omitempty"`
	StaffUserRoleID   *uuid.UUID `json:"staff_user_role_id,omitempty"`
	StaffUserPosition *string    `json:"staff_user_position,omitempty"`

	// LinkDriver: kalau pre-flight lapor tabrakan driver yang linkable,
	// FE mengirim true supaya driver di-link ke staf baru, bukan ditolak.
	LinkDriver bool `json:"link_driver,omitempty"`
}

func (r *StaffCreateReq) Normalize() {
	r.StaffUserName = strings.TrimSpace(r.StaffUserName)
	if r.StaffUserPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.StaffUserPhone)
		if p == "" {
			r.StaffUserPhone = nil
		} else {
			r.StaffUserPhone = &p
		}
	}
	if r.StaffUserEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.StaffUserEmail)
		if e == "" {
			r.StaffUserEmail = nil
		} else {
			r.StaffUserEmail = &e
		}
	}
	if r.StaffUserPosition != nil {
		p := strings.TrimSpace(*r.StaffUserPosition)
		if p == "" {
			r.StaffUserPosition = nil
		} else {
			r.StaffUserPosition = &p
		}
	}
}

func (r *StaffCreateReq) Validate() error {
	if r.StaffUserPhone == nil && r.StaffUserEmail == nil {
		return errors.New("minimal salah satu dari phone/email wajib diisi")
	}
	return nil
}

func (r *StaffCreateReq) ToModel(schoolID uuid.UUID, passwordHash []byte) *model.StaffUserModel {
	return &model.StaffUserModel{
		StaffUserSchoolID:     schoolID,
		StaffUserBranchID:     r.StaffUserBranchID,
		StaffUserRoleID:       r.StaffUserRoleID,
		StaffUserName:         r.StaffUserName,
		StaffUserPhone:        r.StaffUserPhone,
		StaffUserEmail:        r.StaffUserEmail,
		StaffUserPasswordHash: passwordHash,
		StaffUserPosition:     r.StaffUserPosition,
		StaffUserIsActive:     true,
	}
}

/* =========================================================
   REQUEST: UPDATE STAFF (PUT, full)
   ========================================================= */

type StaffUpdateReq struct {
	StaffUserName     string     `json:"staff_user_name" validate:"required,max=100"`
	StaffUserPhone    *string    `json:"staff_user_phone,omitempty"`
	StaffUserEmail    *string    `json:"staff_user_email,omitempty" validate:"omitempty,email"`
	StaffUserBranchID *uuid.UUID `json:"staff_user_branch_id,omitempty"`
	StaffUserRoleID   *uuid.UUID `json:"staff_user_role_id,omitempty"`
	StaffUserPosition *string    `json:"staff_user_position,omitempty"`
	StaffUserIsActive *bool      `json:"staff_user_is_active,omitempty"`
}

func (r *StaffUpdateReq) Normalize() {
	r.StaffUserName = strings.TrimSpace(r.StaffUserName)
	if r.StaffUserPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.StaffUserPhone)
		if p == "" {
			r.StaffUserPhone = nil
		} else {
			r.StaffUserPhone = &p
		}
	}
	if r.StaffUserEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.StaffUserEmail)
		if e == "" {
			r.StaffUserEmail = nil
		} else {
			r.StaffUserEmail = &e
		}
	}
}

/* =========================================================
   REQUEST: SALARY REVISION
   ========================================================= */

type SalaryRevisionCreateReq struct {
	SalaryRevisionUserID        uuid.UUID `json:"salary_revision_user_id" validate:"required"`
	SalaryRevisionEffectiveFrom time.Time `json:"salary_revision_effective_from" validate:"required"`

	SalaryRevisionBasic      int64 `json:"salary_revision_basic" validate:"required,gt=0"`
	SalaryRevisionHRA        int64 `json:"salary_revision_hra" validate:"gte=0"`
	SalaryRevisionAllowances int64 `json:"salary_revision_allowances" validate:"gte=0"`
	SalaryRevisionBonus      int64 `json:"salary_revision_bonus" validate:"gte=0"`

	SalaryRevisionTax             int64 `json:"salary_revision_tax" validate:"gte=0"`
	SalaryRevisionPF              int64 `json:"salary_revision_pf" validate:"gte=0"`
	SalaryRevisionInsurance       int64 `json:"salary_revision_insurance" validate:"gte=0"`
	SalaryRevisionOtherDeductions int64 `json:"salary_revision_other_deductions" validate:"gte=0"`

	SalaryRevisionCustomAdditions  datatypes.JSON `json:"salary_revision_custom_additions,omitempty"`
	SalaryRevisionCustomDeductions datatypes.JSON `json:"salary_revision_custom_deductions,omitempty"`
}

func (r *SalaryRevisionCreateReq) ToModel(schoolID uuid.UUID) *model.SalaryRevisionModel {
	m := &model.SalaryRevisionModel{
		SalaryRevisionSchoolID:        schoolID,
		SalaryRevisionUserID:          r.SalaryRevisionUserID,
		SalaryRevisionEffectiveFrom:   r.SalaryRevisionEffectiveFrom,
		SalaryRevisionBasic:           r.SalaryRevisionBasic,
		SalaryRevisionHRA:             r.SalaryRevisionHRA,
		SalaryRevisionAllowances:      r.SalaryRevisionAllowances,
		SalaryRevisionBonus:           r.SalaryRevisionBonus,
		SalaryRevisionTax:             r.SalaryRevisionTax,
		SalaryRevisionPF:              r.SalaryRevisionPF,
		SalaryRevisionInsurance:       r.SalaryRevisionInsurance,
		SalaryRevisionOtherDeductions: r.SalaryRevisionOtherDeductions,
	}
	if len(r.SalaryRevisionCustomAdditions) > 0 {
		m.SalaryRevisionCustomAdditions = r.SalaryRevisionCustomAdditions
	} else {
		m.SalaryRevisionCustomAdditions = datatypes.JSON([]byte("[]"))
	}
	if len(r.SalaryRevisionCustomDeductions) > 0 {
		m.SalaryRevisionCustomDeductions = r.SalaryRevisionCustomDeductions
	} else {
		m.SalaryRevisionCustomDeductions = datatypes.JSON([]byte("[]"))
	}
	return m
}

/* =========================================================
   REQUEST: ATTENDANCE SUMMARY (upsert per periode)
   ========================================================= */

type AttendanceSummarySaveReq struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Month       int       `json:"month" validate:"required,min=1,max=12"`
	Year        int       `json:"year" validate:"required,min=2000"`
	PresentDays int       `json:"present_days" validate:"gte=0"`
	TotalDays   int       `json:"total_days" validate:"gte=0"`
}

func (r *AttendanceSummarySaveReq) Validate() error {
	if r.PresentDays > r.TotalDays {
		return errors.New("present_days tidak boleh melebihi total_days")
	}
	return nil
}
