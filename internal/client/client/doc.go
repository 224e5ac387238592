// Package client talks to the careerpath backend over JSON/HTTP.
//
// The eight data operations never return an error or panic. They return a
// Result that is exactly one of Ok(data), Empty or Failed(reason), so a
// caller can tell "no such record" apart from "request did not succeed".
// Failed carries a *RequestError whose kind can be matched with errors.Is
// against ErrUnavailable (transport fault), ErrRejected (non-2xx status),
// ErrDecode (unreadable body) or context.Canceled.
//
// Login and Register hand back the raw status and body so the caller can
// show the server's own message; only a transport fault is an error.
//
// Every request carries an X-Request-ID header. There are no retries.
package client
