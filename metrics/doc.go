// Package metrics holds the Prometheus collectors of the run controller.
//
// A Recorder groups the collectors registered against one Registerer.
// Production code uses Default (the global registry); tests build their own
// with New(prometheus.NewRegistry()). A nil *Recorder is valid and records
// nothing.
package metrics
