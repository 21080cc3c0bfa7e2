// file: internals/features/identity/uniqueness/service/probes.go
package service

// Satu probe = satu tabel pemilik identitas. Daftar ini menggantikan
// enam lookup yang dulunya ditulis tangan satu-satu: urutannya menentukan
// deskripsi mana yang dilaporkan kalau nilai yang sama kebetulan ada
// di lebih dari satu tabel.
type probe struct {
	owner      OwnerType
	table      string
	idCol      string
	schoolCol  string
	nameCol    string
	deletedCol string
	phoneCols  []string
	emailCols  []string
	// excludable: probe yang menghormati Query.ExcludeOwner
	// (hanya staff & kontak sekolah, untuk kasus "edit record sendiri")
	excludable bool
	describe   func(name string) string
}

var probes = []probe{
	{
		owner:      OwnerStaffUser,
		table:      "staff_users",
		idCol:      "staff_user_id",
		schoolCol:  "staff_user_school_id",
		nameCol:    "staff_user_name",
		deletedCol: "staff_user_deleted_at",
		phoneCols:  []string{"staff_user_phone"},
		emailCols:  []string{"staff_user_email"},
		excludable: true,
		describe:   func(n string) string { return "Staf: " + n },
	},
	{
		owner:      OwnerSchoolContact,
		table:      "school_contacts",
		idCol:      "school_contact_id",
		schoolCol:  "school_contact_school_id",
		nameCol:    "school_contact_name",
		deletedCol: "school_contact_deleted_at",
		phoneCols:  []string{"school_contact_phone"},
		emailCols:  []string{"school_contact_email"},
		excludable: true,
		describe:   func(n string) string { return "Kontak sekolah: " + n },
	},
	{
		owner:      OwnerAdmissionInquiry,
		table:      "admission_inquiries",
		idCol:      "admission_inquiry_id",
		schoolCol:  "admission_inquiry_school_id",
		nameCol:    "admission_inquiry_student_name",
		deletedCol: "admission_inquiry_deleted_at",
		phoneCols: []string{
			"admission_inquiry_parent_phone",
			"admission_inquiry_secondary_phone",
			"admission_inquiry_father_phone",
			"admission_inquiry_mother_phone",
		},
		emailCols: []string{"admission_inquiry_parent_email"},
		describe:  func(n string) string { return "Pendaftaran siswa: " + n },
	},
	{
		owner:      OwnerStudentGuardian,
		table:      "student_guardians",
		idCol:      "student_guardian_id",
		schoolCol:  "student_guardian_school_id",
		nameCol:    "student_guardian_name",
		deletedCol: "student_guardian_deleted_at",
		phoneCols: []string{
			"student_guardian_parent_phone",
			"student_guardian_emergency_phone",
		},
		emailCols: []string{"student_guardian_parent_email"},
		describe:  func(n string) string { return "Wali siswa: " + n },
	},
	{
		owner:      OwnerTransportDriver,
		table:      "transport_drivers",
		idCol:      "transport_driver_id",
		schoolCol:  "transport_driver_school_id",
		nameCol:    "transport_driver_name",
		deletedCol: "transport_driver_deleted_at",
		phoneCols:  []string{"transport_driver_phone"},
		emailCols:  []string{"transport_driver_email"},
		describe:   func(n string) string { return "Driver transport: " + n },
	},
	{
		owner:      OwnerJobApplicant,
		table:      "job_applicants",
		idCol:      "job_applicant_id",
		schoolCol:  "job_applicant_school_id",
		nameCol:    "job_applicant_name",
		deletedCol: "job_applicant_deleted_at",
		phoneCols:  []string{"job_applicant_phone"},
		emailCols:  []string{"job_applicant_email"},
		describe:   func(n string) string { return "Pelamar kerja: " + n },
	},
}
