// Package binder decodes HTTP request bodies into typed request structs.
//
// BindJSON is strict: it requires an application/json content type, rejects
// unknown fields and trailing data, and caps the body size.
//
//	bind := binder.BindJSON(1 << 20)
//	var req ApplyRequest
//	if err := bind(r, &req); err != nil {
//		// errors.Is(err, binder.ErrInvalidJSON), ...
//	}
package binder
