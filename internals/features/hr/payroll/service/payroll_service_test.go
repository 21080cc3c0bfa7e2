// file: internals/features/hr/payroll/service/payroll_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	staffModel "sekolahku_backend/internals/features/hr/staff/model"
)

func newMockedService(t *testing.T) (*PayrollService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return NewPayrollService(gdb), mock
}

func testSummaries(schoolID uuid.UUID, userA, userB, noRev uuid.UUID) []staffModel.StaffAttendanceSummaryModel {
	return []staffModel.StaffAttendanceSummaryModel{
		{
			StaffAttendanceSummarySchoolID:    schoolID,
			StaffAttendanceSummaryUserID:      userA,
			StaffAttendanceSummaryMonth:       3,
			StaffAttendanceSummaryYear:        2026,
			StaffAttendanceSummaryPresentDays: 20,
			StaffAttendanceSummaryTotalDays:   22,
		},
		{
			StaffAttendanceSummarySchoolID:    schoolID,
			StaffAttendanceSummaryUserID:      userB,
			StaffAttendanceSummaryMonth:       3,
			StaffAttendanceSummaryYear:        2026,
			StaffAttendanceSummaryPresentDays: 22,
			StaffAttendanceSummaryTotalDays:   22,
		},
		{
			StaffAttendanceSummarySchoolID:    schoolID,
			StaffAttendanceSummaryUserID:      noRev,
			StaffAttendanceSummaryMonth:       3,
			StaffAttendanceSummaryYear:        2026,
			StaffAttendanceSummaryPresentDays: 10,
			StaffAttendanceSummaryTotalDays:   22,
		},
	}
}

func testRevisionFor(revisions map[uuid.UUID]*staffModel.SalaryRevisionModel) func(uuid.UUID) (*staffModel.SalaryRevisionModel, error) {
	return func(userID uuid.UUID) (*staffModel.SalaryRevisionModel, error) {
		rev, ok := revisions[userID]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return rev, nil
	}
}

// Generate ulang dengan input sama harus menghasilkan payslip identik
// field demi field; overwrite periode tidak boleh menggeser angka.
func TestBuildPeriodSlipsRegenerateIdentical(t *testing.T) {
	schoolID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	noRev := uuid.New()

	summaries := testSummaries(schoolID, userA, userB, noRev)
	revisions := map[uuid.UUID]*staffModel.SalaryRevisionModel{
		userA: {
			SalaryRevisionSchoolID: schoolID,
			SalaryRevisionUserID:   userA,
			SalaryRevisionBasic:    22000,
			SalaryRevisionHRA:      5000,
			SalaryRevisionTax:      1000,
		},
		userB: {
			SalaryRevisionSchoolID:  schoolID,
			SalaryRevisionUserID:    userB,
			SalaryRevisionBasic:     30000,
			SalaryRevisionBonus:     2000,
			SalaryRevisionInsurance: 500,
		},
	}

	first, err := buildPeriodSlips(schoolID, 3, 2026, summaries, testRevisionFor(revisions))
	require.NoError(t, err)
	second, err := buildPeriodSlips(schoolID, 3, 2026, summaries, testRevisionFor(revisions))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// User tanpa revisi gaji dilewati, bukan error dan bukan payslip kosong.
	require.Len(t, first, 2)
	assert.Equal(t, userA, first[0].PayslipUserID)
	assert.Equal(t, userB, first[1].PayslipUserID)

	// Spot check angka userA: leave = (22000/22)*(22-20) = 2000.
	assert.Equal(t, int64(2000), first[0].PayslipLeaveDeduction)
	assert.Equal(t, int64(27000), first[0].PayslipGross)
	assert.Equal(t, int64(24000), first[0].PayslipNet)
}

// Mark-paid idempoten: panggilan kedua bukan error, 0 baris (semua sudah
// PAID), paid_at lama tidak tersentuh karena filter status <> PAID.
func TestMarkPeriodPaidSecondCallNoop(t *testing.T) {
	svc, mock := newMockedService(t)
	schoolID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payslips" SET .*"payslip_paid_at".*"payslip_status"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payslips" SET .*"payslip_paid_at".*"payslip_status"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := svc.MarkPeriodPaid(context.Background(), schoolID, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = svc.MarkPeriodPaid(context.Background(), schoolID, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Daftar user kosong (manage_selected tanpa grant) tidak boleh menyentuh DB.
func TestListPeriodForUsersEmptySet(t *testing.T) {
	svc, mock := newMockedService(t)

	rows, err := svc.ListPeriodForUsers(context.Background(), uuid.New(), 3, 2026, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
