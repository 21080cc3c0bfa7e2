// file: internals/features/hr/payroll/service/compute.go
package service

import (
	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// PayComponent: satu baris tambahan/potongan custom ({label, amount}),
// bentuk yang sama dengan isi kolom JSONB di revisi gaji.
type PayComponent struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// DecodeComponents membaca kolom JSONB custom menjadi slice komponen.
// Kolom kosong/nil dianggap tidak ada komponen, bukan error.
func DecodeComponents(raw datatypes.JSON) ([]PayComponent, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []PayComponent
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func SumComponents(cs []PayComponent) int64 {
	var total int64
	for _, c := range cs {
		total += c.Amount
	}
	return total
}

type ComputeInput struct {
	Basic      int64
	HRA        int64
	Allowances int64
	Bonus      int64

	Tax             int64
	PF              int64
	Insurance       int64
	OtherDeductions int64

	CustomAdditions  []PayComponent
	CustomDeductions []PayComponent

	PresentDays int
	TotalDays   int
}

type ComputeResult struct {
	Gross          int64
	LeaveDeduction int64
	Net            int64
}

// Compute menghitung gross/potongan cuti/net, murni tanpa side effect.
//
//	gross = basic + hra + allowances + bonus + Σ customAdditions
//	leave = (basic / totalDays) * (totalDays - presentDays), 0 kalau totalDays=0
//	net   = gross - tax - pf - insurance - leave - otherDeductions - Σ customDeductions
//
// Tarif per hari pakai pembagian bulat (satuan rupiah utuh). Net tidak
// di-clamp: nilai negatif disimpan apa adanya.
func Compute(in ComputeInput) ComputeResult {
	gross := in.Basic + in.HRA + in.Allowances + in.Bonus + SumComponents(in.CustomAdditions)

	var leave int64
	if in.TotalDays > 0 {
		perDay := in.Basic / int64(in.TotalDays)
		leave = perDay * int64(in.TotalDays-in.PresentDays)
	}

	net := gross - in.Tax - in.PF - in.Insurance - leave - in.OtherDeductions - SumComponents(in.CustomDeductions)
	return ComputeResult{Gross: gross, LeaveDeduction: leave, Net: net}
}
