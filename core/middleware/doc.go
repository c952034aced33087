// Package middleware groups the Fiber middleware mounted in front of the
// spool routes by the serve command.
//
// # rayid
//
// rayid.New tags each request with an ID stored under the "ray_id" local and
// echoed in the X-Ray-ID response header. A client that sends its own
// X-Ray-ID keeps it; otherwise a random UUID is used. logger.WithRayID reads
// the local back so request logs can be correlated.
//
// # auth
//
// auth.New compares the X-API-Key request header against the configured key
// in constant time and answers 401 with a JSON error body on mismatch. An
// empty configured key (SERVER_API_KEY unset) disables the check and every
// request passes through.
//
// The serve command mounts rayid first, then request logging, then auth,
// so rejected requests are still logged with their ID. The /swagger routes
// are registered before auth and stay public.
package middleware
