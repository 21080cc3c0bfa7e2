// file: internals/features/admissions/inquiries/dto/inquiry_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/admissions/inquiries/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
)

type InquiryCreateReq struct {
	AdmissionInquiryStudentName string  `json:"admission_inquiry_student_name" validate:"required,max=100"`
	AdmissionInquiryParentName  *string `json:"admission_inquiry_parent_name,omitempty" validate:"omitempty,max=100"`

	AdmissionInquiryParentPhone    *string `json:"admission_inquiry_parent_phone,omitempty"`
	AdmissionInquirySecondaryPhone *string `json:"admission_inquiry_secondary_phone,omitempty"`
	AdmissionInquiryFatherPhone    *string `json:"admission_inquiry_father_phone,omitempty"`
	AdmissionInquiryMotherPhone    *string `json:"admission_inquiry_mother_phone,omitempty"`
	AdmissionInquiryParentEmail    *string `json:"admission_inquiry_parent_email,omitempty" validate:"omitempty,email"`

	AdmissionInquiryGradeApplied *string `json:"admission_inquiry_grade_applied,omitempty" validate:"omitempty,max=40"`
	AdmissionInquiryNotes        *string `json:"admission_inquiry_notes,omitempty"`
}

func normalizePhonePtr(p **string) {
	if *p == nil {
		return
	}
	v := uniq.Normalize(uniq.KindPhone, **p)
	if v == "" {
		*p = nil
	} else {
		*p = &v
	}
}

func (r *InquiryCreateReq) Normalize() {
	r.AdmissionInquiryStudentName = strings.TrimSpace(r.AdmissionInquiryStudentName)
	if r.AdmissionInquiryParentName != nil {
		n := strings.TrimSpace(*r.AdmissionInquiryParentName)
		if n == "" {
			r.AdmissionInquiryParentName = nil
		} else {
			r.AdmissionInquiryParentName = &n
		}
	}
	normalizePhonePtr(&r.AdmissionInquiryParentPhone)
	normalizePhonePtr(&r.AdmissionInquirySecondaryPhone)
	normalizePhonePtr(&r.AdmissionInquiryFatherPhone)
	normalizePhonePtr(&r.AdmissionInquiryMotherPhone)
	if r.AdmissionInquiryParentEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.AdmissionInquiryParentEmail)
		if e == "" {
			r.AdmissionInquiryParentEmail = nil
		} else {
			r.AdmissionInquiryParentEmail = &e
		}
	}
}

func (r *InquiryCreateReq) Validate() error {
	if r.AdmissionInquiryParentPhone == nil && r.AdmissionInquiryParentEmail == nil {
		return errors.New("minimal nomor ortu utama atau email wajib diisi")
	}
	return nil
}

// Phones: semua nomor terisi, urutan tetap, dipakai untuk preflight satu-satu.
func (r *InquiryCreateReq) Phones() []string {
	var out []string
	for _, p := range []*string{
		r.AdmissionInquiryParentPhone,
		r.AdmissionInquirySecondaryPhone,
		r.AdmissionInquiryFatherPhone,
		r.AdmissionInquiryMotherPhone,
	} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func (r *InquiryCreateReq) ToModel(schoolID uuid.UUID) *model.AdmissionInquiryModel {
	return &model.AdmissionInquiryModel{
		AdmissionInquirySchoolID:       schoolID,
		AdmissionInquiryStudentName:    r.AdmissionInquiryStudentName,
		AdmissionInquiryParentName:     r.AdmissionInquiryParentName,
		AdmissionInquiryParentPhone:    r.AdmissionInquiryParentPhone,
		AdmissionInquirySecondaryPhone: r.AdmissionInquirySecondaryPhone,
		AdmissionInquiryFatherPhone:    r.AdmissionInquiryFatherPhone,
		AdmissionInquiryMotherPhone:    r.AdmissionInquiryMotherPhone,
		AdmissionInquiryParentEmail:    r.AdmissionInquiryParentEmail,
		AdmissionInquiryGradeApplied:   r.AdmissionInquiryGradeApplied,
		AdmissionInquiryNotes:          r.AdmissionInquiryNotes,
		AdmissionInquiryStatus:         model.InquiryStatusNew,
	}
}

type InquiryStatusReq struct {
	AdmissionInquiryStatus string `json:"admission_inquiry_status" validate:"required,oneof=NEW CONTACTED ENROLLED CLOSED"`
}
