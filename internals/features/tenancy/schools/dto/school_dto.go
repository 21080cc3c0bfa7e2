// file: internals/features/tenancy/schools/dto/school_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/tenancy/schools/model"
)

type SchoolCreateReq struct {
	SchoolName string  `json:"school_name" validate:"required,max=120"`
	SchoolSlug string  `json:"school_slug" validate:"required,max=120,lowercase"`
	SchoolCity *string `json:"school_city,omitempty" validate:"omitempty,max=80"`
}

func (r *SchoolCreateReq) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.SchoolSlug = strings.ToLower(strings.TrimSpace(r.SchoolSlug))
	if r.SchoolCity != nil {
		c := strings.TrimSpace(*r.SchoolCity)
		if c == "" {
			r.SchoolCity = nil
		} else {
			r.SchoolCity = &c
		}
	}
}

func (r *SchoolCreateReq) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:     r.SchoolName,
		SchoolSlug:     r.SchoolSlug,
		SchoolCity:     r.SchoolCity,
		SchoolIsActive: true,
	}
}

type BranchCreateReq struct {
	BranchName    string  `json:"branch_name" validate:"required,max=120"`
	BranchAddress *string `json:"branch_address,omitempty"`
}

func (r *BranchCreateReq) Normalize() {
	r.BranchName = strings.TrimSpace(r.BranchName)
	if r.BranchAddress != nil {
		a := strings.TrimSpace(*r.BranchAddress)
		if a == "" {
			r.BranchAddress = nil
		} else {
			r.BranchAddress = &a
		}
	}
}

func (r *BranchCreateReq) ToModel(schoolID uuid.UUID) *model.BranchModel {
	return &model.BranchModel{
		BranchSchoolID: schoolID,
		BranchName:     r.BranchName,
		BranchAddress:  r.BranchAddress,
		BranchIsActive: true,
	}
}
