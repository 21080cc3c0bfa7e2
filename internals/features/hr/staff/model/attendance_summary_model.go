// file: internals/features/hr/staff/model/attendance_summary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffAttendanceSummaryModel: rekap kehadiran per (user, bulan, tahun).
// Sumber angka present/total untuk generate payroll.
type StaffAttendanceSummaryModel struct {
	StaffAttendanceSummaryID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:staff_attendance_summary_id" json:"staff_attendance_summary_id"`
	StaffAttendanceSummarySchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:staff_attendance_summary_school_id" json:"staff_attendance_summary_school_id"`
	StaffAttendanceSummaryUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_staff_attendance_period;column:staff_attendance_summary_user_id" json:"staff_attendance_summary_user_id"`

	StaffAttendanceSummaryMonth int `gorm:"type:int;not null;uniqueIndex:uq_staff_attendance_period;column:staff_attendance_summary_month" json:"staff_attendance_summary_month"`
	StaffAttendanceSummaryYear  int `gorm:"type:int;not null;uniqueIndex:uq_staff_attendance_period;column:staff_attendance_summary_year" json:"staff_attendance_summary_year"`

	StaffAttendanceSummaryPresentDays int `gorm:"type:int;not null;default:0;column:staff_attendance_summary_present_days" json:"staff_attendance_summary_present_days"`
	StaffAttendanceSummaryTotalDays   int `gorm:"type:int;not null;default:0;column:staff_attendance_summary_total_days" json:"staff_attendance_summary_total_days"`

	StaffAttendanceSummaryCreatedAt time.Time `gorm:"column:staff_attendance_summary_created_at;autoCreateTime" json:"staff_attendance_summary_created_at"`
	StaffAttendanceSummaryUpdatedAt time.Time `gorm:"column:staff_attendance_summary_updated_at;autoUpdateTime" json:"staff_attendance_summary_updated_at"`
}

func (StaffAttendanceSummaryModel) TableName() string { return "staff_attendance_summaries" }
