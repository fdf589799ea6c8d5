// Package clientip resolves the client address of an HTTP request behind
// proxies and stores it in the request context.
//
// Headers are consulted in order (CF-Connecting-IP, X-Forwarded-For,
// X-Real-IP by default) and the first valid address wins; RemoteAddr is the
// fallback. Only trust these headers when the service runs behind a proxy
// that overwrites them.
package clientip
