// Package dispatch turns shipment records into solver requests and hands
// the resulting documents to a sink. It is the glue between ingest's
// record streams, solver's routing facade, and sink's output writers; it
// holds no scheduling state of its own.
package dispatch
