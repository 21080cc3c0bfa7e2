// file: internals/features/access/grants/dto/grants_dto.go
package dto

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/access/grants/model"
)

/* =========================================================
   CLASS ACCESS (bulk replace per user)
   ========================================================= */

type ClassAccessEntryReq struct {
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	CanRead     bool      `json:"can_read"`
	CanWrite    bool      `json:"can_write"`
	CanEdit     bool      `json:"can_edit"`
	CanDelete   bool      `json:"can_delete"`
}

type ClassAccessSaveReq struct {
	UserID  uuid.UUID             `json:"user_id" validate:"required"`
	Entries []ClassAccessEntryReq `json:"entries"`
}

// Normalize menegakkan invariant grant: write/edit/delete ⇒ read.
// Entry tanpa akses sama sekali dibuang (sama dengan tidak punya grant).
func (r *ClassAccessSaveReq) Normalize() {
	out := r.Entries[:0]
	seen := make(map[uuid.UUID]bool, len(r.Entries))
	for _, e := range r.Entries {
		if seen[e.ClassroomID] {
			continue
		}
		seen[e.ClassroomID] = true
		if e.CanWrite || e.CanEdit || e.CanDelete {
			e.CanRead = true
		}
		if !e.CanRead {
			continue
		}
		out = append(out, e)
	}
	r.Entries = out
}

func (r *ClassAccessSaveReq) ToModels(schoolID uuid.UUID) []model.ClassAccessModel {
	rows := make([]model.ClassAccessModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, model.ClassAccessModel{
			ClassAccessSchoolID:    schoolID,
			ClassAccessUserID:      r.UserID,
			ClassAccessClassroomID: e.ClassroomID,
			ClassAccessCanRead:     e.CanRead,
			ClassAccessCanWrite:    e.CanWrite,
			ClassAccessCanEdit:     e.CanEdit,
			ClassAccessCanDelete:   e.CanDelete,
		})
	}
	return rows
}

/* =========================================================
   STAFF ACCESS (bulk replace per manager)
   ========================================================= */

type StaffAccessSaveReq struct {
	ManagerID uuid.UUID   `json:"manager_id" validate:"required"`
	StaffIDs  []uuid.UUID `json:"staff_ids"`
}

// Normalize: dedupe + buang self-grant (manage_own sudah meng-cover diri sendiri).
func (r *StaffAccessSaveReq) Normalize() {
	seen := make(map[uuid.UUID]bool, len(r.StaffIDs))
	out := r.StaffIDs[:0]
	for _, id := range r.StaffIDs {
		if id == uuid.Nil || id == r.ManagerID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	r.StaffIDs = out
}

func (r *StaffAccessSaveReq) ToModels(schoolID uuid.UUID) []model.StaffAccessModel {
	rows := make([]model.StaffAccessModel, 0, len(r.StaffIDs))
	for _, id := range r.StaffIDs {
		rows = append(rows, model.StaffAccessModel{
			StaffAccessSchoolID:  schoolID,
			StaffAccessManagerID: r.ManagerID,
			StaffAccessStaffID:   id,
		})
	}
	return rows
}
