package contexture_test

import (
	"testing"

	"github.com/hupe1980/contexture"
	"github.com/hupe1980/contexture/core"
	"github.com/hupe1980/contexture/internal/testutil"
	"github.com/hupe1980/contexture/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	g := contexture.New()
	assert.Equal(t, "global", g.Name())
	assert.NotNil(t, g.Ledger())

	custom := contexture.New(func(o *contexture.Options) {
		o.Name = "app"
	})
	assert.Equal(t, "app", custom.Name())
}

func TestNew_SharedLedgerOption(t *testing.T) {
	shared := ledger.NewInMemoryLedger()
	g1 := contexture.New(func(o *contexture.Options) { o.Ledger = shared })
	g2 := contexture.New(func(o *contexture.Options) { o.Ledger = shared })

	g1.FlagName("site.locked")
	testutil.RequireUsagePanic(t, core.ReasonDuplicateName, func() {
		g2.FlagName("site.locked")
	})
}

// TestDecoupledComponents exercises the façade end to end: two components
// exchange a value, an action and an event purely through the tree, without
// holding references to each other.
func TestDecoupledComponents(t *testing.T) {
	g := contexture.New()

	total := g.RequestableName("cart.total")
	checkout := g.ExecutableName("cart.checkout")
	changed := g.NotificationName("cart.changed")
	busy := g.FlagName("cart.busy")

	app := g.CreateSubcontext("app")

	// the cart component owns the data and the action
	cartScope := app.CreateSubcontext("cart")
	items := []float64{9.99, 5.00}
	cartScope.AddRequestable(total, func() (any, error) {
		sum := 0.0
		for _, p := range items {
			sum += p
		}
		return sum, nil
	})
	cartScope.AddExecutable(checkout, func() error {
		items = nil
		cartScope.Post(changed, len(items))
		return nil
	})

	// the badge component, a sibling, reacts through the shared ancestor
	badgeScope := app.CreateSubcontext("badge")
	rec := &testutil.NotificationRecorder{}
	app.AddObserver(changed, rec.Deliver)

	sum, ok := contexture.Request[float64](cartScope, total)
	require.True(t, ok)
	assert.InDelta(t, 14.99, sum, 0.001)

	badgeScope.SetFlag(busy)
	assert.True(t, badgeScope.FlagIsSet(busy))

	// the action lives below app; upward-only resolution cannot reach it
	testutil.RequireUsagePanic(t, core.ReasonNotFound, func() { app.Execute(checkout) })

	require.True(t, cartScope.Execute(checkout))
	require.Equal(t, 1, rec.Count())
	count, ok := core.PayloadAs[int](rec.Seen[0])
	require.True(t, ok)
	assert.Equal(t, 0, count)

	badgeScope.UnsetFlag(busy)
	assert.False(t, badgeScope.FlagIsSet(busy))
}
