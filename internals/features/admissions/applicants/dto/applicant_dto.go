// file: internals/features/admissions/applicants/dto/applicant_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/admissions/applicants/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
)

type ApplicantCreateReq struct {
	JobApplicantName     string  `json:"job_applicant_name" validate:"required,max=100"`
	JobApplicantPhone    *string `json:"job_applicant_phone,omitempty"`
	JobApplicantEmail    *string `json:"job_applicant_email,omitempty" validate:"omitempty,email"`
	JobApplicantPosition *string `json:"job_applicant_position,omitempty" validate:"omitempty,max=80"`
}

func (r *ApplicantCreateReq) Normalize() {
	r.JobApplicantName = strings.TrimSpace(r.JobApplicantName)
	if r.JobApplicantPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.JobApplicantPhone)
		if p == "" {
			r.JobApplicantPhone = nil
		} else {
			r.JobApplicantPhone = &p
		}
	}
	if r.JobApplicantEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.JobApplicantEmail)
		if e == "" {
			r.JobApplicantEmail = nil
		} else {
			r.JobApplicantEmail = &e
		}
	}
	if r.JobApplicantPosition != nil {
		p := strings.TrimSpace(*r.JobApplicantPosition)
		if p == "" {
			r.JobApplicantPosition = nil
		} else {
			r.JobApplicantPosition = &p
		}
	}
}

func (r *ApplicantCreateReq) Validate() error {
	if r.JobApplicantPhone == nil && r.JobApplicantEmail == nil {
		return errors.New("minimal salah satu dari phone/email wajib diisi")
	}
	return nil
}

func (r *ApplicantCreateReq) ToModel(schoolID uuid.UUID) *model.JobApplicantModel {
	return &model.JobApplicantModel{
		JobApplicantSchoolID: schoolID,
		JobApplicantName:     r.JobApplicantName,
		JobApplicantPhone:    r.JobApplicantPhone,
		JobApplicantEmail:    r.JobApplicantEmail,
		JobApplicantPosition: r.JobApplicantPosition,
		JobApplicantStatus:   model.ApplicantStatusApplied,
	}
}

type ApplicantStatusReq struct {
	JobApplicantStatus string `json:"job_applicant_status" validate:"required,oneof=APPLIED INTERVIEWED HIRED REJECTED"`
}
