// Package ingest decodes facility, route, and shipment records from an
// external source and installs them into a network.Graph, implementing the
// record shapes and defaulting rules of §6 and the composite-route
// expansion of §4.3.
//
// Source[T] abstracts over the record stream itself — JSONLines[T] reads
// newline-delimited JSON, Static[T] replays an in-memory slice (used by
// tests and by bulk one-shot loads) — so Updater never depends on how
// records arrive, only that they arrive as a lazy, ordered sequence.
package ingest
