// Package app is the composition root for the marquee watch mode.
//
// Run wires configuration, the library client, the playback backend, the
// shared state store, and the UI together, then blocks inside the TUI until
// the user exits or the context is cancelled.
//
// The poller is the only writer of catalog data. It fires once at startup and
// then on a fixed interval regardless of whether earlier cycles succeeded,
// failed, or are still in flight; each cycle resolves independently into the
// store. The UI reads store snapshots on its own tick, so a slow library
// never makes the interface unresponsive.
package app
