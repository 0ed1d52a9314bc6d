package ingest

import (
	"fmt"

	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
)

func secToMin(s int64) temporal.Duration { return temporal.Duration(s / 60) }

// vehicleMovementOf maps a route record's route_type to (vehicle,
// movement) per §4.3: "air" -> air/linehaul; "carting" -> surface/carting;
// anything else -> surface/linehaul.
func vehicleMovementOf(routeType string) (network.VehicleKind, network.MovementKind) {
	switch routeType {
	case "air":
		return network.VehicleAir, network.MovementLinehaul
	case "carting":
		return network.VehicleSurface, network.MovementCarting
	default:
		return network.VehicleSurface, network.MovementLinehaul
	}
}

// pairIndex computes the EdgeId suffix k for ordered pair (i, j) over N
// halts, per §6: k = i*(N-1) - i*(i-1)/2 + (j-i-1).
func pairIndex(i, j, n int) int {
	return i*(n-1) - i*(i-1)/2 + (j - i - 1)
}

// ExpandHalts expands a composite route descriptor into its N·(N−1)/2
// sub-edges per §4.3. resolveFacility looks up a halt's facility by code
// (returning ok=false for an endpoint the graph does not yet know about);
// such a pair is dropped rather than returned, matching the updater's
// no-buffering rule for routes arriving ahead of their endpoints.
func ExpandHalts(rec RouteRecord, resolveFacility func(code string) (network.Facility, bool)) ([]network.Route, []error) {
	n := len(rec.HaltCenters)
	if n < 2 {
		return nil, []error{ErrBadHaltCount}
	}

	days := make([]temporal.Weekday, 0, len(rec.DaysOfWeek))
	for _, d := range rec.DaysOfWeek {
		days = append(days, temporal.Weekday(d%7))
	}
	vehicle, movement := vehicleMovementOf(rec.RouteType)

	var routes []network.Route
	var warnings []error

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			h := rec.HaltCenters
			src, srcOK := resolveFacility(h[i].CenterCode)
			tgt, tgtOK := resolveFacility(h[j].CenterCode)
			if !srcOK || !tgtOK {
				warnings = append(warnings, fmt.Errorf("%w: route %s pair (%d,%d) endpoint unresolved", ErrDroppedRecord, rec.RouteScheduleUUID, i, j))
				continue
			}

			departureTOD := temporal.NewTimeOfDay(int(secToMin(rec.ReportingTimeSec) + secToMin(h[i].RelETDSec)))
			duration := secToMin(h[j].RelETASec) - secToMin(h[i].RelETDSec)
			if duration <= 0 {
				warnings = append(warnings, fmt.Errorf("%w: route %s pair (%d,%d)", ErrBadDuration, rec.RouteScheduleUUID, i, j))
				continue
			}

			outSource := secToMin(h[i].RelETDSec) - secToMin(h[i].RelETASec)
			if i > 0 {
				outSource /= 2
			}
			inTarget := secToMin(h[j].RelETDSec) - secToMin(h[j].RelETASec)
			if j < n-1 {
				inTarget /= 2
			}

			loading := src.Latency(movement, network.ProcessOutbound) + outSource
			unloading := tgt.Latency(movement, network.ProcessInbound) + inTarget

			cost, err := temporal.NewEdgeCost(loading, departureTOD, duration, unloading, days)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("%w: route %s pair (%d,%d): %v", ErrDroppedRecord, rec.RouteScheduleUUID, i, j, err))
				continue
			}

			k := pairIndex(i, j, n)
			routes = append(routes, network.Route{
				Code:       fmt.Sprintf("%s.%d", rec.RouteScheduleUUID, k),
				Name:       rec.Name,
				Vehicle:    vehicle,
				Movement:   movement,
				SourceCode: h[i].CenterCode,
				TargetCode: h[j].CenterCode,
				Cost:       cost,
			})
		}
	}

	return routes, warnings
}
