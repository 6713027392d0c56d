package core_test

import (
	"testing"

	"github.com/hupe1980/contexture/core"
	"github.com/hupe1980/contexture/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestContext_SetFlag_TreeWideUniqueness(t *testing.T) {
	g := newGlobal()
	flag := g.FlagName("checkout.active")
	scopes := testutil.BuildTree(g.Context, "a/a1", "b")

	scopes["a"].SetFlag(flag)

	// conflicts anywhere in the setter's context-tree are fatal
	testutil.RequireUsagePanic(t, core.ReasonFlagAlreadySet, func() { scopes["a"].SetFlag(flag) })
	testutil.RequireUsagePanic(t, core.ReasonFlagAlreadySet, func() { scopes["a/a1"].SetFlag(flag) })
	testutil.RequireUsagePanic(t, core.ReasonFlagAlreadySet, func() { g.SetFlag(flag) })

	// a sibling shares only the common ancestor; the flag set in "a" is not
	// in "b"'s context-tree
	testutil.RequireNoPanic(t, func() { scopes["b"].SetFlag(flag) })
}

func TestContext_FlagIsSet_ChainVisibility(t *testing.T) {
	g := newGlobal()
	flag := g.FlagName("offline")
	scopes := testutil.BuildTree(g.Context, "a/a1", "b")

	g.SetFlag(flag)
	assert.True(t, scopes["a/a1"].FlagIsSet(flag))
	assert.True(t, scopes["b"].FlagIsSet(flag))
	g.UnsetFlag(flag)

	// a flag set in a descendant is invisible upward and sideways
	scopes["a/a1"].SetFlag(flag)
	assert.True(t, scopes["a/a1"].FlagIsSet(flag))
	assert.False(t, scopes["a"].FlagIsSet(flag))
	assert.False(t, g.FlagIsSet(flag))
	assert.False(t, scopes["b"].FlagIsSet(flag))
}

func TestContext_UnsetFlag_NearestInChain(t *testing.T) {
	g := newGlobal()
	flag := g.FlagName("busy")
	scopes := testutil.BuildTree(g.Context, "a/a1")

	scopes["a"].SetFlag(flag)

	// unset searches self plus ancestors; a descendant of the holder reaches it
	testutil.RequireNoPanic(t, func() { scopes["a/a1"].UnsetFlag(flag) })
	assert.False(t, scopes["a"].FlagIsSet(flag))

	// once unset, the name is free to raise again anywhere in the tree
	testutil.RequireNoPanic(t, func() { g.SetFlag(flag) })
	g.UnsetFlag(flag)
}

func TestContext_UnsetFlag_NotReachableFromAncestor(t *testing.T) {
	g := newGlobal()
	flag := g.FlagName("editing")
	a := g.CreateSubcontext("a")

	a.SetFlag(flag)

	// the holder is below the caller: not in the caller's chain
	testutil.RequireUsagePanic(t, core.ReasonFlagNotSet, func() { g.UnsetFlag(flag) })

	// still set where it was raised
	assert.True(t, a.FlagIsSet(flag))
}

func TestContext_UnsetFlag_MissingIsFatal(t *testing.T) {
	g := newGlobal()
	flag := g.FlagName("never.set")
	testutil.RequireUsagePanic(t, core.ReasonFlagNotSet, func() { g.UnsetFlag(flag) })
}
