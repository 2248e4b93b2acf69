// Package api provides the HTTP client for the VOICE Relay API. It handles
// bearer-token authentication, request/response serialization, and automatic
// retry with exponential backoff for transient failures.
//
// The relay only ever handles opaque base64 envelope text; nothing in this
// package touches plaintext or key material beyond ferrying PEM strings.
//
// # Retry Behavior
//
// Failed requests are retried up to 3 times by default for status codes 408,
// 429, 500, 502, 503, and 504, with exponential backoff and jitter. Retry is
// a transport concern: the crypto core never retries, because a failed unwrap
// or authentication check cannot succeed on a second attempt.
//
// # Error Handling
//
// Sentinel errors cover the common relay error conditions:
//
//   - [ErrUnauthorized]: missing or malformed bearer token (401).
//   - [ErrUserNotFound]: no such user registered (404).
//   - [ErrBlobRejected]: the relay refused the envelope text (400).
//   - [ErrRateLimited]: rate limit exceeded (429).
//
// Use errors.Is to check for them. The [Client] type is safe for concurrent
// use.
package api
