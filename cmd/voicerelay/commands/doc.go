// Package commands implements the voicerelay CLI: key management, sealing
// and opening envelopes locally, and talking to a relay.
package commands
