package core_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/hupe1980/contexture/core"
)

func TestContext_DumpTree_Golden(t *testing.T) {
	g := newGlobal()
	profile := g.RequestableName("user.profile")
	changed := g.NotificationName("cart.changed")
	clearCart := g.ExecutableName("cart.clear")
	active := g.FlagName("checkout.active")

	ui := g.CreateSubcontext("ui")
	cart := ui.CreateSubcontext("cart")
	g.CreateSubcontext("sync")

	g.AddRequestable(profile, func() (any, error) { return "p", nil })
	ui.AddObserver(changed, func(core.Notification) error { return nil })
	cart.AddExecutable(clearCart, func() error { return nil })
	cart.SetFlag(active)

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "dump_tree", []byte(g.DumpTree()))
}
