// file: internals/features/hr/payroll/service/payroll_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	payrollModel "sekolahku_backend/internals/features/hr/payroll/model"
	staffModel "sekolahku_backend/internals/features/hr/staff/model"
)

var ErrNoAttendance = errors.New("tidak ada rekap kehadiran untuk periode ini")

type PayrollService struct {
	DB *gorm.DB
}

func NewPayrollService(db *gorm.DB) *PayrollService {
	return &PayrollService{DB: db}
}

// periodEnd: hari terakhir bulan periode; revisi gaji dipilih yang paling
// baru dengan effective_from ≤ tanggal ini.
func periodEnd(month, year int) time.Time {
	return time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// buildPeriodSlips menurunkan payslip dari rekap kehadiran + revisi gaji.
// revisionFor mengembalikan revisi terbaru yang berlaku untuk user tsb,
// atau gorm.ErrRecordNotFound kalau belum ada (user dilewati, bukan error).
// Deterministik: input sama ⇒ payslip sama, dasar idempotensi generate ulang.
func buildPeriodSlips(
	schoolID uuid.UUID, month, year int,
	summaries []staffModel.StaffAttendanceSummaryModel,
	revisionFor func(userID uuid.UUID) (*staffModel.SalaryRevisionModel, error),
) ([]payrollModel.PayslipModel, error) {
	slips := make([]payrollModel.PayslipModel, 0, len(summaries))
	for _, sum := range summaries {
		rev, err := revisionFor(sum.StaffAttendanceSummaryUserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		adds, err := DecodeComponents(rev.SalaryRevisionCustomAdditions)
		if err != nil {
			return nil, fmt.Errorf("custom_additions user %s rusak: %w", sum.StaffAttendanceSummaryUserID, err)
		}
		dedus, err := DecodeComponents(rev.SalaryRevisionCustomDeductions)
		if err != nil {
			return nil, fmt.Errorf("custom_deductions user %s rusak: %w", sum.StaffAttendanceSummaryUserID, err)
		}

		res := Compute(ComputeInput{
			Basic:            rev.SalaryRevisionBasic,
			HRA:              rev.SalaryRevisionHRA,
			Allowances:       rev.SalaryRevisionAllowances,
			Bonus:            rev.SalaryRevisionBonus,
			Tax:              rev.SalaryRevisionTax,
			PF:               rev.SalaryRevisionPF,
			Insurance:        rev.SalaryRevisionInsurance,
			OtherDeductions:  rev.SalaryRevisionOtherDeductions,
			CustomAdditions:  adds,
			CustomDeductions: dedus,
			PresentDays:      sum.StaffAttendanceSummaryPresentDays,
			TotalDays:        sum.StaffAttendanceSummaryTotalDays,
		})

		slips = append(slips, payrollModel.PayslipModel{
			PayslipSchoolID:         schoolID,
			PayslipUserID:           sum.StaffAttendanceSummaryUserID,
			PayslipMonth:            month,
			PayslipYear:             year,
			PayslipBasic:            rev.SalaryRevisionBasic,
			PayslipHRA:              rev.SalaryRevisionHRA,
			PayslipAllowances:       rev.SalaryRevisionAllowances,
			PayslipBonus:            rev.SalaryRevisionBonus,
			PayslipTax:              rev.SalaryRevisionTax,
			PayslipPF:               rev.SalaryRevisionPF,
			PayslipInsurance:        rev.SalaryRevisionInsurance,
			PayslipLeaveDeduction:   res.LeaveDeduction,
			PayslipOtherDeductions:  rev.SalaryRevisionOtherDeductions,
			PayslipCustomAdditions:  rev.SalaryRevisionCustomAdditions,
			PayslipCustomDeductions: rev.SalaryRevisionCustomDeductions,
			PayslipPresentDays:      sum.StaffAttendanceSummaryPresentDays,
			PayslipTotalDays:        sum.StaffAttendanceSummaryTotalDays,
			PayslipGross:            res.Gross,
			PayslipNet:              res.Net,
			PayslipStatus:           payrollModel.PayslipStatusGenerated,
		})
	}
	return slips, nil
}

// GeneratePeriod menghitung ulang seluruh payslip (schoolID, month, year).
// Overwrite eksplisit: payslip lama periode itu dihapus lalu diganti dalam
// SATU transaksi supaya pembaca tidak pernah melihat periode setengah jadi.
// Staf tanpa revisi gaji yang berlaku dilewati (bukan error).
func (s *PayrollService) GeneratePeriod(ctx context.Context, schoolID uuid.UUID, month, year int) (int, error) {
	var summaries []staffModel.StaffAttendanceSummaryModel
	if err := s.DB.WithContext(ctx).
		Where("staff_attendance_summary_school_id = ? AND staff_attendance_summary_month = ? AND staff_attendance_summary_year = ?",
			schoolID, month, year).
		Find(&summaries).Error; err != nil {
		return 0, err
	}
	if len(summaries) == 0 {
		return 0, ErrNoAttendance
	}

	end := periodEnd(month, year)
	slips, err := buildPeriodSlips(schoolID, month, year, summaries, func(userID uuid.UUID) (*staffModel.SalaryRevisionModel, error) {
		var rev staffModel.SalaryRevisionModel
		err := s.DB.WithContext(ctx).
			Where("salary_revision_school_id = ? AND salary_revision_user_id = ? AND salary_revision_effective_from <= ?",
				schoolID, userID, end).
			Order("salary_revision_effective_from DESC").
			First(&rev).Error
		if err != nil {
			return nil, err
		}
		return &rev, nil
	})
	if err != nil {
		return 0, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("payslip_school_id = ? AND payslip_month = ? AND payslip_year = ?", schoolID, month, year).
			Delete(&payrollModel.PayslipModel{}).Error; err != nil {
			return err
		}
		if len(slips) == 0 {
			return nil
		}
		return tx.Create(&slips).Error
	})
	if err != nil {
		return 0, err
	}
	return len(slips), nil
}

// MarkPeriodPaid mengubah status seluruh payslip periode menjadi PAID dan
// men-stempel paid_at. Idempoten: dipanggil dua kali bukan error, panggilan
// kedua 0 baris (filter status <> PAID), jadi paid_at pertama tidak tertimpa.
// Tidak ada jalur "unpay".
func (s *PayrollService) MarkPeriodPaid(ctx context.Context, schoolID uuid.UUID, month, year int) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&payrollModel.PayslipModel{}).
		Where("payslip_school_id = ? AND payslip_month = ? AND payslip_year = ? AND payslip_status <> ?",
			schoolID, month, year, payrollModel.PayslipStatusPaid).
		Updates(map[string]any{
			"payslip_status":  payrollModel.PayslipStatusPaid,
			"payslip_paid_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// GetUserPayslip mengambil payslip milik satu user untuk satu periode.
// gorm.ErrRecordNotFound diteruskan apa adanya, controller yang memetakan
// ke 404.
func (s *PayrollService) GetUserPayslip(ctx context.Context, schoolID, userID uuid.UUID, month, year int) (*payrollModel.PayslipModel, error) {
	var m payrollModel.PayslipModel
	err := s.DB.WithContext(ctx).
		Where("payslip_school_id = ? AND payslip_user_id = ? AND payslip_month = ? AND payslip_year = ?",
			schoolID, userID, month, year).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListPeriodForUsers: ListPeriod yang dibatasi daftar user hasil
// materialisasi scope. Daftar kosong ⇒ hasil kosong tanpa query (user
// manage_selected tanpa grant memang tidak melihat siapa-siapa).
func (s *PayrollService) ListPeriodForUsers(ctx context.Context, schoolID uuid.UUID, month, year int, userIDs []uuid.UUID) ([]payrollModel.PayslipModel, error) {
	if len(userIDs) == 0 {
		return []payrollModel.PayslipModel{}, nil
	}
	var rows []payrollModel.PayslipModel
	err := s.DB.WithContext(ctx).
		Where("payslip_school_id = ? AND payslip_month = ? AND payslip_year = ? AND payslip_user_id IN ?",
			schoolID, month, year, userIDs).
		Order("payslip_user_id ASC").
		Find(&rows).Error
	return rows, err
}

// ListPeriod mengambil payslip satu periode, urut nama tidak tersedia di
// tabel ini jadi urut user id saja biar stabil.
func (s *PayrollService) ListPeriod(ctx context.Context, schoolID uuid.UUID, month, year int) ([]payrollModel.PayslipModel, error) {
	var rows []payrollModel.PayslipModel
	err := s.DB.WithContext(ctx).
		Where("payslip_school_id = ? AND payslip_month = ? AND payslip_year = ?", schoolID, month, year).
		Order("payslip_user_id ASC").
		Find(&rows).Error
	return rows, err
}
