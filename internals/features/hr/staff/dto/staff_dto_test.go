// file: internals/features/hr/staff/dto/staff_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStaffCreateReq_NormalizePhoneAndEmail(t *testing.T) {
	req := StaffCreateReq{
		StaffUserName:  "  Budi Santoso ",
		StaffUserPhone: strPtr("+62 812-3456-7890"),
		StaffUserEmail: strPtr("  Budi@Sekolah.ID "),
	}
	req.Normalize()

	assert.Equal(t, "Budi Santoso", req.StaffUserName)
	require.NotNil(t, req.StaffUserPhone)
	assert.Equal(t, "6281234567890", *req.StaffUserPhone)
	require.NotNil(t, req.StaffUserEmail)
	assert.Equal(t, "budi@sekolah.id", *req.StaffUserEmail)
}

func TestStaffCreateReq_EmptyAfterNormalizeBecomesNil(t *testing.T) {
	req := StaffCreateReq{
		StaffUserName:  "Budi",
		StaffUserPhone: strPtr("  +- () "),
		StaffUserEmail: strPtr("   "),
	}
	req.Normalize()

	assert.Nil(t, req.StaffUserPhone)
	assert.Nil(t, req.StaffUserEmail)
	assert.Error(t, req.Validate())
}

func TestStaffCreateReq_RequiresPhoneOrEmail(t *testing.T) {
	req := StaffCreateReq{StaffUserName: "Budi"}
	req.Normalize()
	assert.Error(t, req.Validate())

	req.StaffUserPhone = strPtr("0812345678")
	req.Normalize()
	assert.NoError(t, req.Validate())
}

func TestAttendanceSummarySaveReq_PresentCannotExceedTotal(t *testing.T) {
	req := AttendanceSummarySaveReq{Month: 1, Year: 2026, PresentDays: 23, TotalDays: 22}
	assert.Error(t, req.Validate())

	req.PresentDays = 22
	assert.NoError(t, req.Validate())
}
