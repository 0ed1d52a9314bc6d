package dispatch

import (
	"context"
	"errors"

	"github.com/delhivery/moirai-sub000/ingest"
	"github.com/delhivery/moirai-sub000/sink"
	"github.com/delhivery/moirai-sub000/solver"
	"github.com/rs/zerolog"
)

// Dispatcher drains a shipment record source, resolves each record into a
// solver.Request, solves it against a Facade, and writes the rendered
// result document to a sink. A malformed record is logged and dropped; it
// never stalls the loop or reaches the sink.
type Dispatcher struct {
	facade *solver.Facade
	sink   sink.Sink
	log    zerolog.Logger
}

// NewDispatcher constructs a Dispatcher solving against facade and
// writing to dest.
func NewDispatcher(facade *solver.Facade, dest sink.Sink, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{facade: facade, sink: dest, log: log.With().Str("component", "dispatch").Logger()}
}

// Run drains src until ctx is canceled or src reports ingest.ErrSourceClosed.
func (d *Dispatcher) Run(ctx context.Context, src ingest.Source[ingest.ShipmentRecord]) {
	for {
		rec, err := src.Next(ctx)
		if errors.Is(err, ingest.ErrSourceClosed) || errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			d.log.Warn().Err(err).Msg("malformed shipment record")
			continue
		}
		d.handle(rec)
	}
}

func (d *Dispatcher) handle(rec ingest.ShipmentRecord) {
	req, err := Resolve(rec)
	if err != nil {
		d.log.Warn().Err(err).Str("shipment_id", rec.ID).Msg("shipment record dropped")
		return
	}

	result := d.facade.Solve(req)
	doc := sink.BuildDocument(result)
	if err := d.sink.Write(doc); err != nil {
		d.log.Error().Err(err).Str("shipment_id", req.ID).Msg("sink write failed")
	}
}
