// file: internals/features/identity/uniqueness/service/resolver.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerType string

const (
	OwnerStaffUser        OwnerType = "staff_user"
	OwnerSchoolContact    OwnerType = "school_contact"
	OwnerAdmissionInquiry OwnerType = "admission_inquiry"
	OwnerStudentGuardian  OwnerType = "student_guardian"
	OwnerTransportDriver  OwnerType = "transport_driver"
	OwnerJobApplicant     OwnerType = "job_applicant"
)

// Query: satu pengecekan "siapa pemilik nomor/email ini?".
type Query struct {
	Kind     Kind
	Value    string    // raw, dinormalisasi di dalam
	SchoolID uuid.UUID // tenant si pemanggil; dipakai untuk aturan link driver↔staf

	// ExcludeOwner: record yang sedang diedit, supaya tidak menabrak dirinya
	// sendiri. Hanya berlaku untuk probe staff_users & school_contacts.
	ExcludeOwner *uuid.UUID

	// ForOwnerType: tipe record yang MAU dibuat/di-link oleh pemanggil.
	// Dipakai untuk pengecualian driver↔staf. Kosongkan kalau tidak relevan.
	ForOwnerType OwnerType
}

// Result: exists=false adalah jalur normal "tidak ada", bukan error.
// Linkable=true artinya tabrakan driver↔staf di tenant yang sama:
// pemanggil harus me-link (transport_driver_user_id = staff_user_id),
// bukan menolak write.
type Result struct {
	Exists      bool      `json:"exists"`
	Linkable    bool      `json:"linkable,omitempty"`
	OwnerType   OwnerType `json:"owner_type,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id,omitempty"`
	Description string    `json:"description,omitempty"`
}

type ownerHit struct {
	ID       uuid.UUID
	SchoolID uuid.UUID
	Name     string
}

type lookupFn func(db *gorm.DB, p probe, kind Kind, value string, exclude *uuid.UUID) (*ownerHit, error)

type Resolver struct {
	db     *gorm.DB
	lookup lookupFn
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db, lookup: gormLookup}
}

// Resolve memindai tabel pemilik satu per satu sesuai urutan probes;
// match pertama menang (short-circuit). Pencarian lintas tenant -
// SchoolID hanya menentukan apakah tabrakan driver↔staf boleh di-link.
// Error DB diteruskan apa adanya; pemanggil wajib membatalkan write
// yang sedang dijaga oleh pengecekan ini.
func (r *Resolver) Resolve(ctx context.Context, q Query) (Result, error) {
	val := Normalize(q.Kind, q.Value)
	if val == "" {
		return Result{}, nil
	}

	db := r.db.WithContext(ctx)
	for _, p := range probes {
		var exclude *uuid.UUID
		if p.excludable {
			exclude = q.ExcludeOwner
		}
		hit, err := r.lookup(db, p, q.Kind, val, exclude)
		if err != nil {
			return Result{}, err
		}
		if hit == nil {
			continue
		}
		res := Result{
			Exists:      true,
			OwnerType:   p.owner,
			OwnerID:     hit.ID,
			Description: p.describe(hit.Name),
		}
		if isLinkablePair(p.owner, q.ForOwnerType) &&
			q.SchoolID != uuid.Nil && hit.SchoolID == q.SchoolID {
			res.Linkable = true
		}
		return res, nil
	}
	return Result{}, nil
}

// isLinkablePair: pengecualian yang disengaja atas uniqueness global -
// HANYA pasangan driver transport ↔ staf.
func isLinkablePair(found, creating OwnerType) bool {
	return (found == OwnerTransportDriver && creating == OwnerStaffUser) ||
		(found == OwnerStaffUser && creating == OwnerTransportDriver)
}

// gormLookup mengeksekusi satu probe: SELECT id, school, name dari tabel
// dengan kondisi OR di semua sub-kolom nilai untuk kind tsb.
func gormLookup(db *gorm.DB, p probe, kind Kind, value string, exclude *uuid.UUID) (*ownerHit, error) {
	cols := p.phoneCols
	if kind == KindEmail {
		cols = p.emailCols
	}
	if len(cols) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		conds = append(conds, col+" = ?")
		args = append(args, value)
	}

	q := db.Table(p.table).
		Select(fmt.Sprintf("%s AS id, %s AS school_id, %s AS name", p.idCol, p.schoolCol, p.nameCol)).
		Where("("+strings.Join(conds, " OR ")+")", args...).
		Where(p.deletedCol + " IS NULL")

	if exclude != nil {
		q = q.Where(p.idCol+" <> ?", *exclude)
	}

	var hit ownerHit
	if err := q.Take(&hit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // jalur normal: tidak ada pemilik
		}
		return nil, err
	}
	return &hit, nil
}
