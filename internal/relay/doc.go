// Package relay implements the VOICE Relay server: a zero-knowledge store
// and forward for sealed envelopes. It keeps, per user, a registered public
// key PEM and a queue of opaque base64 envelope blobs. The relay can neither
// decrypt nor meaningfully inspect what it stores; it validates only that a
// blob looks like transport text of plausible size.
//
// Storage is in-memory and lives exactly as long as the process, which is
// all the surrounding system requires of it. The store is an explicit
// mutex-guarded key-value structure rather than ambient package state, so
// every handler goes through one owner with a defined locking discipline.
package relay
