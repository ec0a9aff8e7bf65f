// Package state holds the shared snapshot of catalog data exchanged between
// the background poller and the UI. The poller writes whole snapshots, the UI
// reads copies at its own cadence; neither side ever sees a partial catalog.
package state
