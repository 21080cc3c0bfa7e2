package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubLookup meniru isi tabel per owner type tanpa DB.
type stubRow struct {
	id       uuid.UUID
	schoolID uuid.UUID
	name     string
	value    string // nilai ternormalisasi yang "dimiliki" row ini
}

func stubLookup(rows map[OwnerType][]stubRow) lookupFn {
	return func(_ *gorm.DB, p probe, _ Kind, value string, exclude *uuid.UUID) (*ownerHit, error) {
		for _, r := range rows[p.owner] {
			if r.value != value {
				continue
			}
			if exclude != nil && *exclude == r.id {
				continue
			}
			return &ownerHit{ID: r.id, SchoolID: r.schoolID, Name: r.name}, nil
		}
		return nil, nil
	}
}

// testDB: *gorm.DB minimal agar WithContext tidak panic; stub lookup
// tidak pernah memakainya.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func newTestResolver(rows map[OwnerType][]stubRow) *Resolver {
	return &Resolver{db: testDB(), lookup: stubLookup(rows)}
}

func TestResolveEmptyAfterNormalize(t *testing.T) {
	r := newTestResolver(nil)
	res, err := r.Resolve(context.Background(), Query{Kind: KindPhone, Value: "+- ()"})
	require.NoError(t, err)
	assert.False(t, res.Exists)
}

func TestResolveNotFoundIsNotError(t *testing.T) {
	r := newTestResolver(nil)
	res, err := r.Resolve(context.Background(), Query{Kind: KindPhone, Value: "9876543210"})
	require.NoError(t, err)
	assert.False(t, res.Exists)
	assert.False(t, res.Linkable)
}

func TestResolveStaffPhoneFound(t *testing.T) {
	tenant := uuid.New()
	staffID := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerStaffUser: {{id: staffID, schoolID: tenant, name: "Budi", value: "9876543210"}},
	})

	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "98765 43210", SchoolID: tenant,
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, OwnerStaffUser, res.OwnerType)
	assert.Equal(t, staffID, res.OwnerID)
	assert.Equal(t, "Staf: Budi", res.Description)
	assert.False(t, res.Linkable, "tanpa ForOwnerType tidak ada pengecualian link")
}

func TestResolveProbeOrderFirstMatchWins(t *testing.T) {
	tenant := uuid.New()
	rows := map[OwnerType][]stubRow{
		OwnerJobApplicant:  {{id: uuid.New(), schoolID: tenant, name: "Pelamar", value: "111"}},
		OwnerSchoolContact: {{id: uuid.New(), schoolID: tenant, name: "Kontak", value: "111"}},
	}
	r := newTestResolver(rows)

	// duplikat lintas tabel: school_contacts dicek sebelum job_applicants
	res, err := r.Resolve(context.Background(), Query{Kind: KindPhone, Value: "111", SchoolID: tenant})
	require.NoError(t, err)
	assert.Equal(t, OwnerSchoolContact, res.OwnerType)
	assert.Equal(t, "Kontak sekolah: Kontak", res.Description)
}

func TestResolveExcludeOwnerOnEdit(t *testing.T) {
	tenant := uuid.New()
	staffID := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerStaffUser: {{id: staffID, schoolID: tenant, name: "Budi", value: "222"}},
	})

	// edit record sendiri: nilai tetap dianggap unik
	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "222", SchoolID: tenant, ExcludeOwner: &staffID,
	})
	require.NoError(t, err)
	assert.False(t, res.Exists)
}

func TestResolveExcludeDoesNotApplyToDrivers(t *testing.T) {
	tenant := uuid.New()
	driverID := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerTransportDriver: {{id: driverID, schoolID: tenant, name: "Asep", value: "333"}},
	})

	// ExcludeOwner hanya berlaku untuk staff/kontak, bukan driver
	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "333", SchoolID: tenant, ExcludeOwner: &driverID,
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, OwnerTransportDriver, res.OwnerType)
}

func TestResolveDriverCollisionLinkableSameTenant(t *testing.T) {
	tenant := uuid.New()
	driverID := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerTransportDriver: {{id: driverID, schoolID: tenant, name: "Asep", value: "9000000000"}},
	})

	// membuat staf dengan nomor milik driver di tenant yang SAMA → linkable
	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "9000000000",
		SchoolID: tenant, ForOwnerType: OwnerStaffUser,
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.True(t, res.Linkable)
	assert.Equal(t, driverID, res.OwnerID)
}

func TestResolveDriverCollisionBlockedCrossTenant(t *testing.T) {
	tenantT := uuid.New()
	tenantU := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerTransportDriver: {{id: uuid.New(), schoolID: tenantT, name: "Asep", value: "9000000000"}},
	})

	// tenant berbeda: tetap diblok
	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "9000000000",
		SchoolID: tenantU, ForOwnerType: OwnerStaffUser,
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.False(t, res.Linkable)
}

func TestResolveStaffCollisionLinkableWhenCreatingDriver(t *testing.T) {
	tenant := uuid.New()
	staffID := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerStaffUser: {{id: staffID, schoolID: tenant, name: "Budi", value: "444"}},
	})

	// arah sebaliknya: membuat driver dengan nomor staf → linkable
	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "444",
		SchoolID: tenant, ForOwnerType: OwnerTransportDriver,
	})
	require.NoError(t, err)
	assert.True(t, res.Linkable)
	assert.Equal(t, OwnerStaffUser, res.OwnerType)
}

func TestResolveGuardianCollisionNeverLinkable(t *testing.T) {
	tenant := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerStudentGuardian: {{id: uuid.New(), schoolID: tenant, name: "Ibu Sari", value: "555"}},
	})

	res, err := r.Resolve(context.Background(), Query{
		Kind: KindPhone, Value: "555",
		SchoolID: tenant, ForOwnerType: OwnerStaffUser,
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.False(t, res.Linkable, "pengecualian link hanya untuk pasangan driver↔staf")
}

func TestResolveDeterministicRepeatedCall(t *testing.T) {
	tenant := uuid.New()
	r := newTestResolver(map[OwnerType][]stubRow{
		OwnerStaffUser: {{id: uuid.New(), schoolID: tenant, name: "Budi", value: "9876543210"}},
	})

	q := Query{Kind: KindPhone, Value: "+62 98-7654-3210", SchoolID: tenant}
	first, err := r.Resolve(context.Background(), q)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveStorageErrorPropagates(t *testing.T) {
	dbErr := errors.New("connection reset")
	r := &Resolver{db: testDB(), lookup: func(_ *gorm.DB, _ probe, _ Kind, _ string, _ *uuid.UUID) (*ownerHit, error) {
		return nil, dbErr
	}}

	_, err := r.Resolve(context.Background(), Query{Kind: KindPhone, Value: "666"})
	assert.ErrorIs(t, err, dbErr)
}
