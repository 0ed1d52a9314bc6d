// Package sink renders solved shipment results into the result-document
// wire shape (§6) and writes them to a destination: a log stream for
// diagnostics, or line-delimited JSON for durable output.
package sink
