// file: internals/features/access/roles/service/scope_db_test.go
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
)

func newMockedAccess(t *testing.T) (*AccessService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return NewAccessService(gdb), mock
}

// Baris permission {manage} harus resolve ke manage_all.
func TestResolveModuleScopeFromRoleRow(t *testing.T) {
	svc, mock := newMockedAccess(t)
	roleID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "role_module_permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"role_module_permission_actions"}).
			AddRow("{manage}"))

	scope, err := svc.ResolveModuleScope(context.Background(), roleID, "staff.payroll")
	require.NoError(t, err)
	assert.Equal(t, ScopeManageAll, scope)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Role tanpa baris untuk modul tsb = none, bukan error.
func TestResolveModuleScopeMissingRow(t *testing.T) {
	svc, mock := newMockedAccess(t)

	mock.ExpectQuery(`SELECT .* FROM "role_module_permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"role_module_permission_actions"}))

	scope, err := svc.ResolveModuleScope(context.Background(), uuid.New(), "staff.payroll")
	require.NoError(t, err)
	assert.Equal(t, ScopeNone, scope)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// manage_selected membaca staff_access_grants milik manager.
func TestMaterializeStaffScopeSelected(t *testing.T) {
	svc, mock := newMockedAccess(t)
	managerID := uuid.New()
	staffA := uuid.New()
	staffB := uuid.New()

	mock.ExpectQuery(`SELECT "staff_access_staff_id" FROM "staff_access_grants"`).
		WillReturnRows(sqlmock.NewRows([]string{"staff_access_staff_id"}).
			AddRow(staffA.String()).
			AddRow(staffB.String()))

	set, err := svc.MaterializeStaffScope(context.Background(), ScopeManageSelected, managerID)
	require.NoError(t, err)
	assert.False(t, set.All)
	assert.Equal(t, []uuid.UUID{staffA, staffB}, set.IDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// manage_own tidak butuh query: access set = diri sendiri.
func TestMaterializeStaffScopeOwn(t *testing.T) {
	svc, mock := newMockedAccess(t)
	userID := uuid.New()

	set, err := svc.MaterializeStaffScope(context.Background(), ScopeManageOwn, userID)
	require.NoError(t, err)
	assert.False(t, set.All)
	assert.Equal(t, []uuid.UUID{userID}, set.IDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
