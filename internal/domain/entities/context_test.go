package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_DerivedProperties(t *testing.T) {
	cases := []struct {
		ctx         Context
		hidesButton bool
		showsTab    bool
		kind        string
	}{
		{DataTableCell{}, false, false, KindDataTableCell},
		{Series{}, false, false, KindSeries},
		{Tab{}, true, true, KindTab},
		{TabBarItem{}, false, true, KindTabBarItem},
		{ListStart{}, false, false, KindListStart},
		{ListEnd{}, false, false, KindListEnd},
		{LandmarkStart{}, false, false, KindLandmarkStart},
		{LandmarkEnd{}, false, false, KindLandmarkEnd},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.hidesButton, tc.ctx.HidesButtonTrait(), tc.kind)
		assert.Equal(t, tc.showsTab, tc.ctx.ShowsTabTrait(), tc.kind)
		assert.Equal(t, tc.kind, ContextKind(tc.ctx))
	}
	assert.Equal(t, KindNone, ContextKind(nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Tab{Index: 1, Count: 2}, Normalize(&Tab{Index: 1, Count: 2}))
	assert.Equal(t, ListEnd{}, Normalize(ListEnd{}))
	assert.Nil(t, Normalize((*DataTableCell)(nil)))
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, KindSeries, ContextKind(&Series{}))
	assert.Equal(t, KindNone, ContextKind((*Series)(nil)))
}

func TestResult_Hint(t *testing.T) {
	h := "Tap"
	r := Result{Description: "A", Hint: &h}
	assert.True(t, r.HasHint())
	assert.Equal(t, "Tap", r.HintOr("-"))

	assert.False(t, Result{}.HasHint())
	assert.Equal(t, "-", Result{}.HintOr("-"))
}
