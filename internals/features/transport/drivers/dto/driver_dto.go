// file: internals/features/transport/drivers/dto/driver_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/transport/drivers/model"
	uniq "sekolahku_backend/internals/features/identity/uniqueness/service"
)

type DriverCreateReq struct {
	TransportDriverName      string  `json:"transport_driver_name" validate:"required,max=100"`
	TransportDriverPhone     *string `json:"transport_driver_phone,omitempty"`
	TransportDriverEmail     *string `json:"transport_driver_email,omitempty" validate:"omitempty,email"`
	TransportDriverLicenseNo *string `json:"transport_driver_license_no,omitempty" validate:"omitempty,max=40"`

	// LinkStaff: kalau nomor/email sudah dipakai staf di tenant yang sama,
	// kirim true supaya driver di-link ke staf tersebut, bukan ditolak.
	LinkStaff bool `json:"link_staff,omitempty"`
}

func (r *DriverCreateReq) Normalize() {
	r.TransportDriverName = strings.TrimSpace(r.TransportDriverName)
	if r.TransportDriverPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.TransportDriverPhone)
		if p == "" {
			r.TransportDriverPhone = nil
		} else {
			r.TransportDriverPhone = &p
		}
	}
	if r.TransportDriverEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.TransportDriverEmail)
		if e == "" {
			r.TransportDriverEmail = nil
		} else {
			r.TransportDriverEmail = &e
		}
	}
	if r.TransportDriverLicenseNo != nil {
		l := strings.TrimSpace(*r.TransportDriverLicenseNo)
		if l == "" {
			r.TransportDriverLicenseNo = nil
		} else {
			r.TransportDriverLicenseNo = &l
		}
	}
}

func (r *DriverCreateReq) Validate() error {
	if r.TransportDriverPhone == nil && r.TransportDriverEmail == nil {
		return errors.New("minimal salah satu dari phone/email wajib diisi")
	}
	return nil
}

func (r *DriverCreateReq) ToModel(schoolID uuid.UUID) *model.TransportDriverModel {
	return &model.TransportDriverModel{
		TransportDriverSchoolID:  schoolID,
		TransportDriverName:      r.TransportDriverName,
		TransportDriverPhone:     r.TransportDriverPhone,
		TransportDriverEmail:     r.TransportDriverEmail,
		TransportDriverLicenseNo: r.TransportDriverLicenseNo,
		TransportDriverIsActive:  true,
	}
}

type DriverUpdateReq struct {
	TransportDriverName      string  `json:"transport_driver_name" validate:"required,max=100"`
	TransportDriverPhone     *string `json:"transport_driver_phone,omitempty"`
	TransportDriverEmail     *string `json:"transport_driver_email,omitempty" validate:"omitempty,email"`
	TransportDriverLicenseNo *string `json:"transport_driver_license_no,omitempty" validate:"omitempty,max=40"`
	TransportDriverIsActive  *bool   `json:"transport_driver_is_active,omitempty"`
}

func (r *DriverUpdateReq) Normalize() {
	r.TransportDriverName = strings.TrimSpace(r.TransportDriverName)
	if r.TransportDriverPhone != nil {
		p := uniq.Normalize(uniq.KindPhone, *r.TransportDriverPhone)
		if p == "" {
			r.TransportDriverPhone = nil
		} else {
			r.TransportDriverPhone = &p
		}
	}
	if r.TransportDriverEmail != nil {
		e := uniq.Normalize(uniq.KindEmail, *r.TransportDriverEmail)
		if e == "" {
			r.TransportDriverEmail = nil
		} else {
			r.TransportDriverEmail = &e
		}
	}
}
