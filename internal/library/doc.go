// Package library provides the HTTP client for the video library API.
//
// The library exposes a single listing endpoint, /api/videos, returning an
// ordered list of entries with a display name, a size in bytes, and a
// playable URL. Entry URLs are typically server-relative; ResolveURL turns
// them into absolute URLs against the configured base.
//
// The client never retries. A failed or malformed response surfaces as an
// error for that fetch and the caller decides what to do with it; the poller
// in internal/app simply tries again on the next cycle.
package library
