// file: internals/features/tenancy/contacts/dto/contact_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
	model "sekolahku_backend/internals/features/tenancy/contacts/model"
)

type ContactSaveReq struct {
	SchoolContactName  string  `json:"school_contact_name" validate:"required,max=100"`
	SchoolContactRole  *string `json:"school_contact_role,omitempty" validate:"omitempty,max=80"`
	SchoolContactPhone *string `json:"school_contact_phone,omitempty"`
	SchoolContactEmail *string `json:"school_contact_email,omitempty" validate:"omitempty,email"`
}

func (r *ContactSaveReq) Normalize() {
	r.SchoolContactName = strings.TrimSpace(r.SchoolContactName)
	if r.SchoolContactRole != nil {
		v := strings.TrimSpace(*r.SchoolContactRole)
		if v == "" {
			r.SchoolContactRole = nil
		} else {
			r.SchoolContactRole = &v
		}
	}
	if r.SchoolContactPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.SchoolContactPhone)
		if p == "" {
			r.SchoolContactPhone = nil
		} else {
			r.SchoolContactPhone = &p
		}
	}
	if r.SchoolContactEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.SchoolContactEmail)
		if e == "" {
			r.SchoolContactEmail = nil
		} else {
			r.SchoolContactEmail = &e
		}
	}
}

func (r *ContactSaveReq) Validate() error {
	if r.SchoolContactPhone == nil && r.SchoolContactEmail == nil {
		return errors.New("minimal salah satu dari phone/email wajib diisi")
	}
	return nil
}

func (r *ContactSaveReq) ToModel(schoolID uuid.UUID) *model.SchoolContactModel {
	return &model.SchoolContactModel{
		SchoolContactSchoolID: schoolID,
		SchoolContactName:     r.SchoolContactName,
		SchoolContactRole:     r.SchoolContactRole,
		SchoolContactPhone:    r.SchoolContactPhone,
		SchoolContactEmail:    r.SchoolContactEmail,
	}
}
