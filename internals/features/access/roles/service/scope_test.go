package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

// semua subset dari 4 aksi → reduksi harus total & deterministik
func allActionSubsets() [][]string {
	base := []string{
		constants.ActionView,
		constants.ActionManage,
		constants.ActionManageOwn,
		constants.ActionManageSelected,
	}
	var out [][]string
	for mask := 0; mask < 1<<len(base); mask++ {
		var sub []string
		for i, a := range base {
			if mask&(1<<i) != 0 {
				sub = append(sub, a)
			}
		}
		out = append(out, sub)
	}
	return out
}

func TestResolveScopeTotalAndDeterministic(t *testing.T) {
	valid := map[Scope]bool{
		ScopeNone: true, ScopeViewAll: true, ScopeManageAll: true,
		ScopeManageOwn: true, ScopeManageSelected: true,
	}
	for _, sub := range allActionSubsets() {
		got := ResolveScope(sub)
		assert.True(t, valid[got], "subset %v menghasilkan scope tak dikenal %q", sub, got)
		assert.Equal(t, got, ResolveScope(sub), "tidak deterministik untuk %v", sub)
	}
}

func TestResolveScopeManageDominates(t *testing.T) {
	for _, sub := range allActionSubsets() {
		hasManage := false
		for _, a := range sub {
			if a == constants.ActionManage {
				hasManage = true
			}
		}
		if hasManage {
			assert.Equal(t, ScopeManageAll, ResolveScope(sub), "manage harus menang di %v", sub)
		}
	}
}

func TestResolveScopePrecedence(t *testing.T) {
	assert.Equal(t, ScopeNone, ResolveScope(nil))
	assert.Equal(t, ScopeViewAll, ResolveScope([]string{constants.ActionView}))
	assert.Equal(t, ScopeManageOwn, ResolveScope([]string{constants.ActionManageOwn, constants.ActionView}))
	assert.Equal(t, ScopeManageSelected, ResolveScope([]string{constants.ActionManageSelected, constants.ActionView}))
	// data lama inkonsisten: manage_own + manage_selected → manage_own menang, bukan error
	assert.Equal(t, ScopeManageOwn, ResolveScope([]string{constants.ActionManageSelected, constants.ActionManageOwn}))
}

func TestManageImpliesView(t *testing.T) {
	s := ResolveScope([]string{constants.ActionManage})
	assert.True(t, s.CanView())
	assert.True(t, s.CanManage())

	v := ResolveScope([]string{constants.ActionView})
	assert.True(t, v.CanView())
	assert.False(t, v.CanManage())

	assert.False(t, ScopeNone.CanView())
	assert.False(t, ScopeNone.CanManage())
}

func TestDominantActionClearsOthers(t *testing.T) {
	assert.Equal(t, constants.ActionManage,
		DominantAction([]string{constants.ActionView, constants.ActionManage, constants.ActionManageOwn}))
	assert.Equal(t, constants.ActionView, DominantAction([]string{constants.ActionView}))
	assert.Equal(t, "", DominantAction(nil))
}

func TestMaterializeScope(t *testing.T) {
	self := uuid.New()

	all, err := MaterializeScope(ScopeManageAll, self, nil)
	require.NoError(t, err)
	assert.True(t, all.All)

	viewAll, err := MaterializeScope(ScopeViewAll, self, nil)
	require.NoError(t, err)
	assert.True(t, viewAll.All)

	own, err := MaterializeScope(ScopeManageOwn, self, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{self}, own.IDs)
	assert.False(t, own.All)

	granted := []uuid.UUID{uuid.New(), uuid.New()}
	sel, err := MaterializeScope(ScopeManageSelected, self, func() ([]uuid.UUID, error) {
		return granted, nil
	})
	require.NoError(t, err)
	assert.Equal(t, granted, sel.IDs)

	none, err := MaterializeScope(ScopeNone, self, nil)
	require.NoError(t, err)
	assert.False(t, none.All)
	assert.Empty(t, none.IDs)
}

func TestMaterializeScopeSelectedErrors(t *testing.T) {
	self := uuid.New()

	_, err := MaterializeScope(ScopeManageSelected, self, nil)
	assert.Error(t, err)

	dbErr := errors.New("timeout")
	_, err = MaterializeScope(ScopeManageSelected, self, func() ([]uuid.UUID, error) {
		return nil, dbErr
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestAccessSetContains(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.True(t, AccessSet{All: true}.Contains(b))
	assert.True(t, AccessSet{IDs: []uuid.UUID{a, b}}.Contains(a))
	assert.False(t, AccessSet{IDs: []uuid.UUID{a}}.Contains(b))
	assert.False(t, AccessSet{}.Contains(a))
}
