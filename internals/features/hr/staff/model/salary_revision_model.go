// file: internals/features/hr/staff/model/salary_revision_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SalaryRevisionModel: satu revisi kompensasi seorang staf.
// Payroll memakai revisi ter-baru dengan effective_from ≤ akhir periode.
// Nominal dalam satuan terkecil (rupiah utuh), int64.
type SalaryRevisionModel struct {
	SalaryRevisionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:salary_revision_id" json:"salary_revision_id"`
	SalaryRevisionSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:salary_revision_school_id" json:"salary_revision_school_id"`
	SalaryRevisionUserID   uuid.UUID `gorm:"type:uuid;not null;index;column:salary_revision_user_id" json:"salary_revision_user_id"`

	SalaryRevisionEffectiveFrom time.Time `gorm:"type:date;not null;column:salary_revision_effective_from" json:"salary_revision_effective_from"`

	// Komponen penghasilan
	SalaryRevisionBasic      int64 `gorm:"type:bigint;not null;column:salary_revision_basic" json:"salary_revision_basic"`
	SalaryRevisionHRA        int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_hra" json:"salary_revision_hra"`
	SalaryRevisionAllowances int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_allowances" json:"salary_revision_allowances"`
	SalaryRevisionBonus      int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_bonus" json:"salary_revision_bonus"`

	// Komponen potongan tetap
	SalaryRevisionTax             int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_tax" json:"salary_revision_tax"`
	SalaryRevisionPF              int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_pf" json:"salary_revision_pf"`
	SalaryRevisionInsurance       int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_insurance" json:"salary_revision_insurance"`
	SalaryRevisionOtherDeductions int64 `gorm:"type:bigint;not null;default:0;column:salary_revision_other_deductions" json:"salary_revision_other_deductions"`

	// Komponen custom: array {label, amount} (JSONB)
	SalaryRevisionCustomAdditions  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'::jsonb;column:salary_revision_custom_additions" json:"salary_revision_custom_additions"`
	SalaryRevisionCustomDeductions datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'::jsonb;column:salary_revision_custom_deductions" json:"salary_revision_custom_deductions"`

	SalaryRevisionCreatedAt time.Time `gorm:"column:salary_revision_created_at;autoCreateTime" json:"salary_revision_created_at"`
}

func (SalaryRevisionModel) TableName() string { return "salary_revisions" }
