package ingest

import (
	"context"
	"errors"
	"sync"

	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
	"github.com/rs/zerolog"
)

const defaultCutoff = "09:00"
const defaultOutboundProcessing = "00:00"

// Updater consumes facility and route records and mutates a network.Graph
// under its single-writer discipline (§5): each facility or edge insertion
// is its own graph call, so the underlying muFacility/muRoute locks are
// held for no longer than a single insertion, never for a whole record or
// batch.
type Updater struct {
	graph  *network.Graph
	log    zerolog.Logger

	muGroups sync.Mutex
	groups   map[string][]string // property_id -> facility codes seen so far
}

// NewUpdater constructs an Updater writing into g.
func NewUpdater(g *network.Graph, log zerolog.Logger) *Updater {
	return &Updater{graph: g, log: log.With().Str("component", "updater").Logger(), groups: make(map[string][]string)}
}

// IngestFacility applies one FacilityRecord: inactive records are ignored;
// a missing cutoff defaults to 09:00 and a missing outbound-processing
// time defaults to zero. After insertion, custody edges are installed (or
// extended) between this facility and every other facility sharing its
// property_id.
func (u *Updater) IngestFacility(rec FacilityRecord) error {
	if !rec.Active {
		return nil
	}
	cutoffStr := rec.Attributes.CenterArrivalCutoff
	if cutoffStr == "" {
		cutoffStr = defaultCutoff
	}
	cutoff, err := temporal.ParseTime(cutoffStr)
	if err != nil {
		return err
	}
	outboundStr := rec.Attributes.OutboundProcessingTime
	if outboundStr == "" {
		outboundStr = defaultOutboundProcessing
	}
	outbound, err := temporal.ParseTime(outboundStr)
	if err != nil {
		return err
	}

	f := network.Facility{
		Code:       rec.FacilityCode,
		Name:       rec.Name,
		PropertyID: rec.PropertyID,
		Cutoff:     cutoff,
		Latencies: map[network.LatencyKey]temporal.Duration{
			{Movement: network.MovementLinehaul, Process: network.ProcessOutbound}: temporal.Duration(outbound),
			{Movement: network.MovementCarting, Process: network.ProcessOutbound}:  temporal.Duration(outbound),
		},
	}
	if _, err := u.graph.UpsertFacility(f); err != nil {
		return err
	}

	if rec.PropertyID != "" {
		u.installCustodyGroup(rec.PropertyID, rec.FacilityCode)
	}
	return nil
}

// installCustodyGroup installs a transient edge in each direction between
// the newly-seen facility and every other facility already recorded under
// the same property_id, per §4.3's custody-edge rule.
func (u *Updater) installCustodyGroup(propertyID, code string) {
	u.muGroups.Lock()
	peers := append([]string(nil), u.groups[propertyID]...)
	u.groups[propertyID] = append(u.groups[propertyID], code)
	u.muGroups.Unlock()

	for _, peer := range peers {
		if peer == code {
			continue
		}
		fwdCode := propertyID + ":" + peer + "->" + code
		revCode := propertyID + ":" + code + "->" + peer
		if _, err := u.graph.AddRoute(network.Route{Code: fwdCode, SourceCode: peer, TargetCode: code, Cost: temporal.Transient()}); err != nil {
			u.log.Warn().Err(err).Str("property_id", propertyID).Msg("custody edge install failed")
		}
		if _, err := u.graph.AddRoute(network.Route{Code: revCode, SourceCode: code, TargetCode: peer, Cost: temporal.Transient()}); err != nil {
			u.log.Warn().Err(err).Str("property_id", propertyID).Msg("custody edge install failed")
		}
	}
}

// IngestRoute expands a RouteRecord per §4.3 and installs every sub-edge
// whose endpoints resolve, dropping (with a logged warning) any that do
// not — routes are never buffered waiting for their endpoints to appear.
func (u *Updater) IngestRoute(rec RouteRecord) {
	resolve := func(code string) (network.Facility, bool) {
		f, err := u.graph.FacilityByCode(code)
		return f, err == nil
	}
	routes, warnings := ExpandHalts(rec, resolve)
	for _, w := range warnings {
		u.log.Warn().Err(w).Str("route_schedule_uuid", rec.RouteScheduleUUID).Msg("sub-edge dropped")
	}
	for _, r := range routes {
		if _, err := u.graph.AddRoute(r); err != nil {
			u.log.Warn().Err(err).Str("route_code", r.Code).Msg("sub-edge install failed")
		}
	}
}

// Run drains facilities and routes from their sources until ctx is
// canceled or both sources report ErrSourceClosed. Each source is drained
// on its own goroutine, matching the routing design's per-role worker
// model (§5): the facility and route ingest roles run independently and
// share only the graph they both mutate.
func (u *Updater) Run(ctx context.Context, facilities Source[FacilityRecord], routes Source[RouteRecord]) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for {
			rec, err := facilities.Next(ctx)
			if errors.Is(err, ErrSourceClosed) || errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				u.log.Warn().Err(err).Msg("malformed facility record")
				continue
			}
			if err := u.IngestFacility(rec); err != nil {
				u.log.Warn().Err(err).Str("facility_code", rec.FacilityCode).Msg("facility ingest failed")
			}
		}
	}()

	go func() {
		defer wg.Done()
		for {
			rec, err := routes.Next(ctx)
			if errors.Is(err, ErrSourceClosed) || errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				u.log.Warn().Err(err).Msg("malformed route record")
				continue
			}
			u.IngestRoute(rec)
		}
	}()

	wg.Wait()
}
