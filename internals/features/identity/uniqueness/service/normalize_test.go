package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919876543210", Normalize(KindPhone, "+91 98765-43210"))
	assert.Equal(t, "9876543210", Normalize(KindPhone, "9876543210"))
	assert.Equal(t, "", Normalize(KindPhone, "  +- () "))
	assert.Equal(t, "", Normalize(KindPhone, ""))
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := Normalize(KindPhone, "+62 (812) 3456-789")
	assert.Equal(t, once, Normalize(KindPhone, once))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "budi@sekolah.id", Normalize(KindEmail, "  Budi@Sekolah.ID "))
	assert.Equal(t, "", Normalize(KindEmail, "   "))

	once := Normalize(KindEmail, " ADMIN@Example.com ")
	assert.Equal(t, once, Normalize(KindEmail, once))
}

func TestNormalizeUnknownKind(t *testing.T) {
	assert.Equal(t, "", Normalize(Kind("fax"), "12345"))
}
