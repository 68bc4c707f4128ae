// Package ingestionservice loads blood-pressure measurements from a
// spreadsheet source, classifies them against guideline severity bands and
// maintains the time-stamped local snapshot cache the dashboard reads from.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package ingestionservice
