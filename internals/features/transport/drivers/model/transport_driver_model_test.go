// file: internals/features/transport/drivers/model/transport_driver_model_test.go
package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestTransportDriverTenantUniqueIndexes(t *testing.T) {
	sch, err := schema.Parse(&TransportDriverModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	idx := sch.ParseIndexes()

	phone, ok := idx["uq_transport_driver_school_phone"]
	require.True(t, ok, "index (school_id, phone) hilang")
	assert.Equal(t, "UNIQUE", phone.Class)
	require.Len(t, phone.Fields, 2)
	assert.Equal(t, "transport_driver_school_id", phone.Fields[0].DBName)
	assert.Equal(t, "transport_driver_phone", phone.Fields[1].DBName)

	email, ok := idx["uq_transport_driver_school_email"]
	require.True(t, ok, "index (school_id, email) hilang")
	assert.Equal(t, "UNIQUE", email.Class)
	require.Len(t, email.Fields, 2)
	assert.Equal(t, "transport_driver_school_id", email.Fields[0].DBName)
	assert.Equal(t, "transport_driver_email", email.Fields[1].DBName)
}
