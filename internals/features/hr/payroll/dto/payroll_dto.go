// file: internals/features/hr/payroll/dto/payroll_dto.go
package dto

type PayrollPeriodReq struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2000"`
}
