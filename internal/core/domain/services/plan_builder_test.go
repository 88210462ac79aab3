package services_test

import (
	"math/rand"
	"testing"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/rider"
	"planner/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRiders builds riders with the given ids, in the given order.
func makeRiders(t *testing.T, ids ...int64) []*rider.Rider {
	t.Helper()
	riders := make([]*rider.Rider, 0, len(ids))
	for _, raw := range ids {
		id, err := kernel.NewRiderID(raw)
		require.NoError(t, err)
		r, err := rider.NewRider(id, "Rider "+id.String())
		require.NoError(t, err)
		riders = append(riders, r)
	}
	return riders
}

// makeOrders builds orders with the given ids, in the given order.
func makeOrders(t *testing.T, ids ...int64) []*order.Order {
	t.Helper()
	orders := make([]*order.Order, 0, len(ids))
	for _, raw := range ids {
		id, err := kernel.NewOrderID(raw)
		require.NoError(t, err)
		o, err := order.NewOrder(id)
		require.NoError(t, err)
		orders = append(orders, o)
	}
	return orders
}

// randomUniqueIDs draws n distinct positive ids below limit.
func randomUniqueIDs(rng *rand.Rand, n, limit int) []int64 {
	ids := make([]int64, 0, n)
	for _, v := range rng.Perm(limit)[:n] {
		ids = append(ids, int64(v)+1)
	}
	return ids
}

func TestPlanBuilder_Build(t *testing.T) {
	builder := services.NewPlanBuilder()

	t.Run("should distribute orders round robin over input order", func(t *testing.T) {
		riders := makeRiders(t, 1, 2, 3)
		orders := makeOrders(t, 10, 20, 30, 40, 50)

		p, err := builder.Build(riders, orders)

		require.NoError(t, err)
		assert.Equal(t, []kernel.OrderID{10, 40}, p.Sequence(1))
		assert.Equal(t, []kernel.OrderID{20, 50}, p.Sequence(2))
		assert.Equal(t, []kernel.OrderID{30}, p.Sequence(3))
	})

	t.Run("should return error for empty rider set", func(t *testing.T) {
		orders := makeOrders(t, 10, 20)

		p, err := builder.Build(nil, orders)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, services.ErrEmptyRiderSet)
	})

	t.Run("should allow empty sequences when orders are fewer than riders", func(t *testing.T) {
		riders := makeRiders(t, 1, 2, 3)
		orders := makeOrders(t, 10)

		p, err := builder.Build(riders, orders)

		require.NoError(t, err)
		assert.Equal(t, []kernel.OrderID{10}, p.Sequence(1))
		assert.Empty(t, p.Sequence(2))
		assert.Empty(t, p.Sequence(3))
		assert.True(t, p.HasRider(2), "riders without orders stay keys of the plan")
	})

	t.Run("should build empty plan from zero orders", func(t *testing.T) {
		riders := makeRiders(t, 7)

		p, err := builder.Build(riders, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, p.TotalOrders())
		assert.True(t, p.HasRider(7))
	})

	t.Run("should return error for invalid rider", func(t *testing.T) {
		riders := []*rider.Rider{{}}
		orders := makeOrders(t, 10)

		_, err := builder.Build(riders, orders)

		require.Error(t, err)
		assert.Equal(t, rider.ErrRiderIsNotConstructed, err)
	})

	t.Run("should return error for invalid order", func(t *testing.T) {
		riders := makeRiders(t, 1)
		orders := []*order.Order{{}}

		_, err := builder.Build(riders, orders)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

// TestPlanBuilder_Build_Properties exercises the builder over randomized
// unique-id rider and order collections with at least as many orders as
// riders, checking coverage, conservation, fairness, and determinism.
func TestPlanBuilder_Build_Properties(t *testing.T) {
	builder := services.NewPlanBuilder()
	rng := rand.New(rand.NewSource(20240517))

	for i := 0; i < 200; i++ {
		riderCount := 1 + rng.Intn(12)
		orderCount := riderCount + rng.Intn(40)

		riders := makeRiders(t, randomUniqueIDs(rng, riderCount, 1000)...)
		orders := makeOrders(t, randomUniqueIDs(rng, orderCount, 10000)...)

		p, err := builder.Build(riders, orders)
		require.NoError(t, err)

		// Coverage: every rider holds at least one order.
		for _, r := range riders {
			require.True(t, p.HasRider(r.ID()))
			require.NotEmpty(t, p.Sequence(r.ID()),
				"rider %s received no orders (%d riders, %d orders)", r.ID(), riderCount, orderCount)
		}

		// Conservation: the plan holds exactly the input order ids, once each.
		require.Equal(t, orderCount, p.TotalOrders())
		held := make(map[kernel.OrderID]bool, orderCount)
		for _, id := range p.Orders() {
			require.False(t, held[id], "order %s assigned twice", id)
			held[id] = true
		}
		for _, o := range orders {
			require.True(t, held[o.ID()], "order %s never assigned", o.ID())
		}

		// Fairness: sequence lengths differ by at most one.
		minLoad, maxLoad := orderCount, 0
		for _, r := range riders {
			load := p.Load(r.ID())
			if load < minLoad {
				minLoad = load
			}
			if load > maxLoad {
				maxLoad = load
			}
		}
		require.LessOrEqual(t, maxLoad-minLoad, 1,
			"unfair distribution: min %d, max %d", minLoad, maxLoad)

		// Determinism: the i-th order belongs to the rider at position i mod |riders|.
		for idx, o := range orders {
			expected := riders[idx%riderCount].ID()
			require.True(t, p.Holds(expected, o.ID()),
				"order at position %d not held by rider at position %d", idx, idx%riderCount)
		}
	}
}
