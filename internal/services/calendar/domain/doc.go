// Package domain holds the calendar registry model: events, invites, the
// identifier pools that recycle their numeric ids, the in-memory registry
// that owns them, and the pure audience computation used for notification
// fan-out.
//
// The package is transport-free and storage-free. Persistence and message
// delivery live behind interfaces in the app layer; domain code never
// performs I/O.
package domain
