package plan_test

import (
	"testing"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/plan"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riderID(t *testing.T, value int64) kernel.RiderID {
	t.Helper()
	id, err := kernel.NewRiderID(value)
	require.NoError(t, err)
	return id
}

func orderID(t *testing.T, value int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func TestNewPlan(t *testing.T) {
	t.Run("should create plan from valid assignments", func(t *testing.T) {
		assignments := map[kernel.RiderID][]kernel.OrderID{
			riderID(t, 1): {orderID(t, 10), orderID(t, 40)},
			riderID(t, 2): {orderID(t, 20)},
			riderID(t, 3): {},
		}

		p, err := plan.NewPlan(assignments)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		require.NoError(t, p.ID().Validate())
		assert.Equal(t, []kernel.RiderID{riderID(t, 1), riderID(t, 2), riderID(t, 3)}, p.Riders())
		assert.Equal(t, []kernel.OrderID{orderID(t, 10), orderID(t, 40)}, p.Sequence(riderID(t, 1)))
		assert.Equal(t, 3, p.TotalOrders())
	})

	t.Run("should deep copy input assignments", func(t *testing.T) {
		sequence := []kernel.OrderID{orderID(t, 10)}
		assignments := map[kernel.RiderID][]kernel.OrderID{riderID(t, 1): sequence}

		p, err := plan.NewPlan(assignments)
		require.NoError(t, err)

		sequence[0] = orderID(t, 99)

		assert.Equal(t, []kernel.OrderID{orderID(t, 10)}, p.Sequence(riderID(t, 1)))
	})

	t.Run("should reject order held by two riders", func(t *testing.T) {
		shared := orderID(t, 10)
		assignments := map[kernel.RiderID][]kernel.OrderID{
			riderID(t, 1): {shared},
			riderID(t, 2): {shared},
		}

		p, err := plan.NewPlan(assignments)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject order duplicated within one sequence", func(t *testing.T) {
		dup := orderID(t, 10)
		assignments := map[kernel.RiderID][]kernel.OrderID{
			riderID(t, 1): {dup, dup},
		}

		_, err := plan.NewPlan(assignments)

		require.Error(t, err)
	})

	t.Run("should reject invalid rider id", func(t *testing.T) {
		assignments := map[kernel.RiderID][]kernel.OrderID{
			0: {orderID(t, 10)},
		}

		_, err := plan.NewPlan(assignments)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPlan_Validate(t *testing.T) {
	t.Run("should fail for nil plan", func(t *testing.T) {
		var p *plan.Plan

		require.Error(t, p.Validate())
		assert.Equal(t, plan.ErrPlanIsNotConstructed, p.Validate())
	})

	t.Run("should fail for zero value plan", func(t *testing.T) {
		p := &plan.Plan{}

		assert.Equal(t, plan.ErrPlanIsNotConstructed, p.Validate())
	})
}

func TestPlan_Views(t *testing.T) {
	assignments := map[kernel.RiderID][]kernel.OrderID{
		riderID(t, 3): {orderID(t, 30)},
		riderID(t, 1): {orderID(t, 10), orderID(t, 40)},
		riderID(t, 2): {orderID(t, 20), orderID(t, 50)},
	}
	p, err := plan.NewPlan(assignments)
	require.NoError(t, err)

	t.Run("riders are sorted ascending", func(t *testing.T) {
		assert.Equal(t, []kernel.RiderID{riderID(t, 1), riderID(t, 2), riderID(t, 3)}, p.Riders())
	})

	t.Run("orders are sorted ascending", func(t *testing.T) {
		expected := []kernel.OrderID{orderID(t, 10), orderID(t, 20), orderID(t, 30), orderID(t, 40), orderID(t, 50)}
		assert.Equal(t, expected, p.Orders())
	})

	t.Run("load counts held orders", func(t *testing.T) {
		assert.Equal(t, 2, p.Load(riderID(t, 1)))
		assert.Equal(t, 1, p.Load(riderID(t, 3)))
		assert.Equal(t, 0, p.Load(riderID(t, 99)))
	})

	t.Run("holder finds the owning rider", func(t *testing.T) {
		holder, ok := p.Holder(orderID(t, 50))
		assert.True(t, ok)
		assert.Equal(t, riderID(t, 2), holder)

		_, ok = p.Holder(orderID(t, 99))
		assert.False(t, ok)
	})

	t.Run("sequence copy does not expose internals", func(t *testing.T) {
		sequence := p.Sequence(riderID(t, 1))
		sequence[0] = orderID(t, 77)

		assert.Equal(t, []kernel.OrderID{orderID(t, 10), orderID(t, 40)}, p.Sequence(riderID(t, 1)))
	})

	t.Run("sequence of unknown rider is nil", func(t *testing.T) {
		assert.Nil(t, p.Sequence(riderID(t, 99)))
	})
}

func TestPlan_Relocate(t *testing.T) {
	buildPlan := func(t *testing.T) *plan.Plan {
		t.Helper()
		p, err := plan.NewPlan(map[kernel.RiderID][]kernel.OrderID{
			riderID(t, 1): {orderID(t, 10), orderID(t, 40)},
			riderID(t, 2): {orderID(t, 20)},
		})
		require.NoError(t, err)
		return p
	}

	t.Run("should move order and keep receiver untouched", func(t *testing.T) {
		p := buildPlan(t)

		moved, err := p.Relocate(riderID(t, 1), riderID(t, 2), orderID(t, 10))

		require.NoError(t, err)
		assert.Equal(t, []kernel.OrderID{orderID(t, 40)}, moved.Sequence(riderID(t, 1)))
		assert.Equal(t, []kernel.OrderID{orderID(t, 20), orderID(t, 10)}, moved.Sequence(riderID(t, 2)))
		assert.Equal(t, p.TotalOrders(), moved.TotalOrders())
		assert.False(t, moved.ID().IsEqual(p.ID()), "relocation mints a new snapshot")

		// receiver untouched
		assert.Equal(t, []kernel.OrderID{orderID(t, 10), orderID(t, 40)}, p.Sequence(riderID(t, 1)))
	})

	t.Run("should fail when source does not hold the order", func(t *testing.T) {
		p := buildPlan(t)

		_, err := p.Relocate(riderID(t, 2), riderID(t, 1), orderID(t, 10))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail for unknown riders", func(t *testing.T) {
		p := buildPlan(t)

		_, err := p.Relocate(riderID(t, 99), riderID(t, 1), orderID(t, 10))
		require.ErrorIs(t, err, plan.ErrRiderNotInPlan)

		_, err = p.Relocate(riderID(t, 1), riderID(t, 99), orderID(t, 10))
		require.ErrorIs(t, err, plan.ErrRiderNotInPlan)
	})

	t.Run("should fail when source equals target", func(t *testing.T) {
		p := buildPlan(t)

		_, err := p.Relocate(riderID(t, 1), riderID(t, 1), orderID(t, 10))

		require.Error(t, err)
	})
}

func TestPlan_WithoutOrder(t *testing.T) {
	buildPlan := func(t *testing.T) *plan.Plan {
		t.Helper()
		p, err := plan.NewPlan(map[kernel.RiderID][]kernel.OrderID{
			riderID(t, 1): {orderID(t, 10), orderID(t, 40)},
			riderID(t, 2): {orderID(t, 20)},
		})
		require.NoError(t, err)
		return p
	}

	t.Run("should remove order from its holder only", func(t *testing.T) {
		p := buildPlan(t)

		updated, err := p.WithoutOrder(orderID(t, 40))

		require.NoError(t, err)
		assert.Equal(t, []kernel.OrderID{orderID(t, 10)}, updated.Sequence(riderID(t, 1)))
		assert.Equal(t, []kernel.OrderID{orderID(t, 20)}, updated.Sequence(riderID(t, 2)))
		assert.Equal(t, 2, updated.TotalOrders())
	})

	t.Run("should no-op for absent order", func(t *testing.T) {
		p := buildPlan(t)

		updated, err := p.WithoutOrder(orderID(t, 99))

		require.NoError(t, err)
		assert.Same(t, p, updated, "absent order returns the plan unchanged")
	})

	t.Run("removing twice equals removing once", func(t *testing.T) {
		p := buildPlan(t)

		once, err := p.WithoutOrder(orderID(t, 20))
		require.NoError(t, err)
		twice, err := once.WithoutOrder(orderID(t, 20))
		require.NoError(t, err)

		assert.Equal(t, once.Orders(), twice.Orders())
		assert.Same(t, once, twice)
	})
}
