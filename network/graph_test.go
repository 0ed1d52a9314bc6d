package network_test

import (
	"testing"

	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledCost(t *testing.T) temporal.EdgeCost {
	t.Helper()
	c, err := temporal.NewEdgeCost(10, temporal.NewTimeOfDay(9*60), 120, 5, []temporal.Weekday{0, 1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	return c
}

func TestGraph_UpsertFacilityIsIdempotent(t *testing.T) {
	g := network.NewGraph()
	f := network.Facility{Code: "A", Name: "Alpha"}
	id1, err := g.UpsertFacility(f)
	require.NoError(t, err)
	id2, err := g.UpsertFacility(f)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, g.FacilityCount())
}

func TestGraph_AddRoute_RejectsUnresolvedEndpoints(t *testing.T) {
	g := network.NewGraph()
	_, err := g.UpsertFacility(network.Facility{Code: "A"})
	require.NoError(t, err)

	_, err = g.AddRoute(network.Route{Code: "R1", SourceCode: "A", TargetCode: "B", Cost: scheduledCost(t)})
	assert.ErrorIs(t, err, network.ErrUnresolvedEndpoint)
}

// Invariant 6: after a successful AddRoute, the code index resolves the
// edge and both endpoints' adjacency lists contain it.
func TestGraph_AddRoute_PopulatesIndexAndAdjacency(t *testing.T) {
	g := network.NewGraph()
	_, err := g.UpsertFacility(network.Facility{Code: "A"})
	require.NoError(t, err)
	_, err = g.UpsertFacility(network.Facility{Code: "B"})
	require.NoError(t, err)

	eid, err := g.AddRoute(network.Route{Code: "R1", SourceCode: "A", TargetCode: "B", Cost: scheduledCost(t)})
	require.NoError(t, err)
	assert.NotZero(t, eid)

	r, err := g.RouteByCode("R1")
	require.NoError(t, err)
	assert.Equal(t, "A", r.SourceCode)
	assert.Equal(t, "B", r.TargetCode)

	view := g.NewView(network.Forward, nil)
	aID, ok := view.NodeByCode("A")
	require.True(t, ok)
	neighbors := view.Neighbors(aID)
	require.Len(t, neighbors, 1)
	assert.Equal(t, "R1", neighbors[0].Route().Code)

	bID, ok := view.NodeByCode("B")
	require.True(t, ok)
	reverseView := g.NewView(network.Reverse, nil)
	incoming := reverseView.Neighbors(bID)
	require.Len(t, incoming, 1)
	assert.Equal(t, "R1", incoming[0].Route().Code)
}

func TestGraph_ViewFiltersByVehicle(t *testing.T) {
	g := network.NewGraph()
	_, err := g.UpsertFacility(network.Facility{Code: "A"})
	require.NoError(t, err)
	_, err = g.UpsertFacility(network.Facility{Code: "B"})
	require.NoError(t, err)

	cost := scheduledCost(t)
	_, err = g.AddRoute(network.Route{Code: "AIR", SourceCode: "A", TargetCode: "B", Vehicle: network.VehicleAir, Cost: cost})
	require.NoError(t, err)
	_, err = g.AddRoute(network.Route{Code: "SURF", SourceCode: "A", TargetCode: "B", Vehicle: network.VehicleSurface, Cost: cost})
	require.NoError(t, err)

	surfaceOnly := g.NewView(network.Forward, network.VehicleIs(network.VehicleSurface))
	aID, _ := surfaceOnly.NodeByCode("A")
	neighbors := surfaceOnly.Neighbors(aID)
	require.Len(t, neighbors, 1)
	assert.Equal(t, "SURF", neighbors[0].Route().Code)
}

func TestFacility_LatencyDefaultsToZero(t *testing.T) {
	f := network.Facility{Code: "A"}
	assert.Equal(t, temporal.Duration(0), f.Latency(network.MovementLinehaul, network.ProcessOutbound))
}
