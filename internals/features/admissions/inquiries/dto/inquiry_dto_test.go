// file: internals/features/admissions/inquiries/dto/inquiry_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestInquiryCreateReq_NormalizeAllPhones(t *testing.T) {
	req := InquiryCreateReq{
		AdmissionInquiryStudentName:    " Ani ",
		AdmissionInquiryParentPhone:    strPtr("+62 811-000-111"),
		AdmissionInquirySecondaryPhone: strPtr("0812 000 222"),
		AdmissionInquiryFatherPhone:    strPtr("  "),
		AdmissionInquiryMotherPhone:    strPtr("(0813) 000-333"),
		AdmissionInquiryParentEmail:    strPtr(" Ortu@Mail.COM "),
	}
	req.Normalize()

	assert.Equal(t, "Ani", req.AdmissionInquiryStudentName)
	assert.Nil(t, req.AdmissionInquiryFatherPhone)
	require.NotNil(t, req.AdmissionInquiryParentEmail)
	assert.Equal(t, "ortu@mail.com", *req.AdmissionInquiryParentEmail)

	// Urutan tetap: ortu utama, cadangan, ibu (ayah kosong dibuang)
	assert.Equal(t, []string{"62811000111", "0812000222", "0813000333"}, req.Phones())
}

func TestInquiryCreateReq_RequiresPrimaryContact(t *testing.T) {
	req := InquiryCreateReq{
		AdmissionInquiryStudentName:    "Ani",
		AdmissionInquirySecondaryPhone: strPtr("0812 000 222"),
	}
	req.Normalize()
	// Nomor cadangan saja tidak cukup, harus nomor ortu utama atau email
	assert.Error(t, req.Validate())

	req.AdmissionInquiryParentEmail = strPtr("ortu@mail.com")
	req.Normalize()
	assert.NoError(t, req.Validate())
}
