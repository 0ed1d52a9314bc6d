package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/delhivery/moirai-sub000/config"
	"github.com/delhivery/moirai-sub000/dispatch"
	"github.com/delhivery/moirai-sub000/ingest"
	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/sink"
	"github.com/delhivery/moirai-sub000/solver"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Ingest facility, route, and shipment feeds and emit result documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	cfg := config.Load()
	log := newLogger(cfg)
	log.Info().Str("env", cfg.Env).Msg("moirai starting")

	graph := network.NewGraph()

	facilityFile, err := os.Open(cfg.FacilityFeedPath)
	if err != nil {
		return err
	}
	defer facilityFile.Close()
	routeFile, err := os.Open(cfg.RouteFeedPath)
	if err != nil {
		return err
	}
	defer routeFile.Close()
	shipmentFile, err := os.Open(cfg.ShipmentFeedPath)
	if err != nil {
		return err
	}
	defer shipmentFile.Close()

	dest, err := buildSink(cfg, log)
	if err != nil {
		return err
	}

	facilities := ingest.NewJSONLines[ingest.FacilityRecord](facilityFile)
	routes := ingest.NewJSONLines[ingest.RouteRecord](routeFile)
	shipments := ingest.NewShared[ingest.ShipmentRecord](ingest.NewJSONLines[ingest.ShipmentRecord](shipmentFile))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthSrv := newHealthServer(cfg.Addr)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("health server listening")
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("shutdown signal received")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GracefulTimeout)
		defer shutdownCancel()
		if err := healthSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("health server graceful shutdown failed")
		}
	}()

	updater := ingest.NewUpdater(graph, log)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		updater.Run(ctx, facilities, routes)
		log.Info().Int("facilities", graph.FacilityCount()).Int("routes", graph.RouteCount()).Msg("ingest feeds drained")
	}()

	facade := solver.NewFacade(graph)
	for i := 0; i < cfg.DispatchWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := dispatch.NewDispatcher(facade, dest, log)
			d.Run(ctx, shipments)
		}()
	}

	wg.Wait()
	return dest.Close()
}

// buildSink constructs the result-document Sink per cfg.SinkKind: "jsonl"
// writes to cfg.SinkPath, anything else (including "log") falls back to a
// log-only sink. A log sink always runs alongside jsonl for visibility.
func buildSink(cfg *config.Config, log zerolog.Logger) (sink.Sink, error) {
	logSink := sink.NewLogSink(log)
	if cfg.SinkKind != "jsonl" {
		return logSink, nil
	}
	outFile, err := os.Create(cfg.SinkPath)
	if err != nil {
		return nil, err
	}
	return sink.NewMulti(sink.NewJSONLinesSink(outFile), logSink), nil
}
