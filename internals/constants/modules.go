package constants

// Kunci modul untuk permission per-role.
// Dipakai sebagai nilai kolom role_module_permission_module.
const (
	ModuleAdmissions      = "admissions"
	ModuleStaffDirectory  = "staff.directory"
	ModuleStaffAttendance = "staff.attendance"
	ModulePayroll         = "staff.payroll"
	ModuleClassrooms      = "classrooms"
	ModuleCurriculum      = "curriculum"
	ModuleTransport       = "transport"
	ModuleCanteen         = "canteen"
	ModuleBilling         = "billing"
)

var AllModules = []string{
	ModuleAdmissions,
	ModuleStaffDirectory,
	ModuleStaffAttendance,
	ModulePayroll,
	ModuleClassrooms,
	ModuleCurriculum,
	ModuleTransport,
	ModuleCanteen,
	ModuleBilling,
}

// Aksi yang bisa disimpan per modul pada sebuah role.
// Empat aksi scope saling eksklusif saat disimpan; manage meng-imply view.
const (
	ActionView           = "view"
	ActionManage         = "manage"
	ActionManageOwn      = "manage_own"
	ActionManageSelected = "manage_selected"
)

var AllActions = []string{
	ActionView,
	ActionManage,
	ActionManageOwn,
	ActionManageSelected,
}

func IsKnownModule(m string) bool {
	for _, k := range AllModules {
		if k == m {
			return true
		}
	}
	return false
}

func IsKnownAction(a string) bool {
	for _, k := range AllActions {
		if k == a {
			return true
		}
	}
	return false
}
