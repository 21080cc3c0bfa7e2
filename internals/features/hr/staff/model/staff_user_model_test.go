// file: internals/features/hr/staff/model/staff_user_model_test.go
package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Identitas staf harus unik per tenant lewat index komposit, bukan index
// biasa: jalur 23505 (race yang lolos pre-flight) bergantung padanya.
func TestStaffUserTenantUniqueIndexes(t *testing.T) {
	sch, err := schema.Parse(&StaffUserModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	idx := sch.ParseIndexes()

	phone, ok := idx["uq_staff_user_school_phone"]
	require.True(t, ok, "index (school_id, phone) hilang")
	assert.Equal(t, "UNIQUE", phone.Class)
	require.Len(t, phone.Fields, 2)
	assert.Equal(t, "staff_user_school_id", phone.Fields[0].DBName)
	assert.Equal(t, "staff_user_phone", phone.Fields[1].DBName)

	email, ok := idx["uq_staff_user_school_email"]
	require.True(t, ok, "index (school_id, email) hilang")
	assert.Equal(t, "UNIQUE", email.Class)
	require.Len(t, email.Fields, 2)
	assert.Equal(t, "staff_user_school_id", email.Fields[0].DBName)
	assert.Equal(t, "staff_user_email", email.Fields[1].DBName)
}
