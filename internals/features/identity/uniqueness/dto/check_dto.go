// file: internals/features/identity/uniqueness/dto/check_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	service "sekolahku_backend/internals/features/identity/uniqueness/service"
)

type IdentityCheckReq struct {
	Kind  string `json:"kind" validate:"required,oneof=phone email"`
	Value string `json:"value" validate:"required"`

	// Tipe record yang mau dibuat (opsional), dipakai untuk aturan
	// link driver↔staf.
	ForOwnerType string `json:"for_owner_type,omitempty"`

	// Record yang sedang diedit (opsional).
	ExcludeOwnerID *uuid.UUID `json:"exclude_owner_id,omitempty"`
}

func (r *IdentityCheckReq) Normalize() {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Value = strings.TrimSpace(r.Value)
	r.ForOwnerType = strings.ToLower(strings.TrimSpace(r.ForOwnerType))
}

func (r *IdentityCheckReq) Validate() error {
	switch r.ForOwnerType {
	case "", string(service.OwnerStaffUser), string(service.OwnerSchoolContact),
		string(service.OwnerAdmissionInquiry), string(service.OwnerStudentGuardian),
		string(service.OwnerTransportDriver), string(service.OwnerJobApplicant):
		return nil
	}
	return errors.New("invalid for_owner_type")
}

func (r *IdentityCheckReq) ToQuery(schoolID uuid.UUID) service.Query {
	return service.Query{
		Kind:         service.Kind(r.Kind),
		Value:        r.Value,
		SchoolID:     schoolID,
		ExcludeOwner: r.ExcludeOwnerID,
		ForOwnerType: service.OwnerType(r.ForOwnerType),
	}
}

type IdentityCheckResp struct {
	Exists      bool   `json:"exists"`
	Linkable    bool   `json:"linkable"`
	OwnerType   string `json:"owner_type,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func FromResult(res service.Result) IdentityCheckResp {
	out := IdentityCheckResp{
		Exists:      res.Exists,
		Linkable:    res.Linkable,
		Description: res.Description,
	}
	if res.Exists {
		out.OwnerType = string(res.OwnerType)
		out.OwnerID = res.OwnerID.String()
	}
	return out
}
