package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassAccessNormalizeWriteImpliesRead(t *testing.T) {
	class := uuid.New()
	req := ClassAccessSaveReq{
		UserID: uuid.New(),
		Entries: []ClassAccessEntryReq{
			{ClassroomID: class, CanWrite: true},
		},
	}
	req.Normalize()

	assert.Len(t, req.Entries, 1)
	assert.True(t, req.Entries[0].CanRead, "write ⇒ read harus dipaksa true")
}

func TestClassAccessNormalizeEditDeleteImplyRead(t *testing.T) {
	req := ClassAccessSaveReq{
		UserID: uuid.New(),
		Entries: []ClassAccessEntryReq{
			{ClassroomID: uuid.New(), CanEdit: true},
			{ClassroomID: uuid.New(), CanDelete: true},
		},
	}
	req.Normalize()

	for _, e := range req.Entries {
		assert.True(t, e.CanRead)
	}
}

func TestClassAccessNormalizeDropsEmptyAndDuplicate(t *testing.T) {
	class := uuid.New()
	req := ClassAccessSaveReq{
		UserID: uuid.New(),
		Entries: []ClassAccessEntryReq{
			{ClassroomID: class, CanRead: true},
			{ClassroomID: class, CanWrite: true}, // duplikat classroom → dibuang
			{ClassroomID: uuid.New()},            // tanpa akses apa pun → dibuang
		},
	}
	req.Normalize()

	assert.Len(t, req.Entries, 1)
	assert.Equal(t, class, req.Entries[0].ClassroomID)
}

func TestStaffAccessNormalize(t *testing.T) {
	mgr := uuid.New()
	a := uuid.New()
	req := StaffAccessSaveReq{
		ManagerID: mgr,
		StaffIDs:  []uuid.UUID{a, a, mgr, uuid.Nil},
	}
	req.Normalize()

	assert.Equal(t, []uuid.UUID{a}, req.StaffIDs)
}
