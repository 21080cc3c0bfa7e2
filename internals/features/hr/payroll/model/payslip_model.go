// file: internals/features/hr/payroll/model/payslip_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PayslipStatusGenerated = "GENERATED"
	PayslipStatusPaid      = "PAID"
)

// PayslipModel: satu record kompensasi terhitung untuk satu user & periode.
// Net disimpan apa adanya (boleh negatif); clamping hanya urusan tampilan.
// Generate ulang periode = hapus semua payslip periode itu lalu hitung ulang
// (overwrite eksplisit, snapshot lama hilang).
type PayslipModel struct {
	PayslipID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payslip_id" json:"payslip_id"`
	PayslipSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:payslip_school_id" json:"payslip_school_id"`
	PayslipUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period;column:payslip_user_id" json:"payslip_user_id"`

	PayslipMonth int `gorm:"type:int;not null;uniqueIndex:uq_payslip_period;column:payslip_month" json:"payslip_month"`
	PayslipYear  int `gorm:"type:int;not null;uniqueIndex:uq_payslip_period;column:payslip_year" json:"payslip_year"`

	// Komponen penghasilan (snapshot dari revisi gaji yang dipakai)
	PayslipBasic      int64 `gorm:"type:bigint;not null;column:payslip_basic" json:"payslip_basic"`
	PayslipHRA        int64 `gorm:"type:bigint;not null;default:0;column:payslip_hra" json:"payslip_hra"`
	PayslipAllowances int64 `gorm:"type:bigint;not null;default:0;column:payslip_allowances" json:"payslip_allowances"`
	PayslipBonus      int64 `gorm:"type:bigint;not null;default:0;column:payslip_bonus" json:"payslip_bonus"`

	// Komponen potongan
	PayslipTax             int64 `gorm:"type:bigint;not null;default:0;column:payslip_tax" json:"payslip_tax"`
	PayslipPF              int64 `gorm:"type:bigint;not null;default:0;column:payslip_pf" json:"payslip_pf"`
	PayslipInsurance       int64 `gorm:"type:bigint;not null;default:0;column:payslip_insurance" json:"payslip_insurance"`
	PayslipLeaveDeduction  int64 `gorm:"type:bigint;not null;default:0;column:payslip_leave_deduction" json:"payslip_leave_deduction"`
	PayslipOtherDeductions int64 `gorm:"type:bigint;not null;default:0;column:payslip_other_deductions" json:"payslip_other_deductions"`

	PayslipCustomAdditions  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'::jsonb;column:payslip_custom_additions" json:"payslip_custom_additions"`
	PayslipCustomDeductions datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'::jsonb;column:payslip_custom_deductions" json:"payslip_custom_deductions"`

	// Angka kehadiran yang dipakai saat hitung (snapshot)
	PayslipPresentDays int `gorm:"type:int;not null;default:0;column:payslip_present_days" json:"payslip_present_days"`
	PayslipTotalDays   int `gorm:"type:int;not null;default:0;column:payslip_total_days" json:"payslip_total_days"`

	// Hasil hitung
	PayslipGross int64 `gorm:"type:bigint;not null;column:payslip_gross" json:"payslip_gross"`
	PayslipNet   int64 `gorm:"type:bigint;not null;column:payslip_net" json:"payslip_net"`

	PayslipStatus string `gorm:"type:varchar(20);not null;default:'GENERATED';column:payslip_status" json:"payslip_status"`
	// Diisi saat mark-paid, nil selama masih GENERATED. Tidak pernah
	// di-reset (tidak ada jalur unpay).
	PayslipPaidAt *time.Time `gorm:"column:payslip_paid_at" json:"payslip_paid_at,omitempty"`

	PayslipCreatedAt time.Time `gorm:"column:payslip_created_at;autoCreateTime" json:"payslip_created_at"`
	PayslipUpdatedAt time.Time `gorm:"column:payslip_updated_at;autoUpdateTime" json:"payslip_updated_at"`
}

func (PayslipModel) TableName() string { return "payslips" }
