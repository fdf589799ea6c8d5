// Package handler provides typed HTTP handlers with JSON responses.
//
// A HandlerFunc receives a bound request value and returns a Response. Wrap
// turns it into a plain http.HandlerFunc, running the configured binder and
// routing every failure through an ErrorHandler:
//
//	type ApplyRequest struct {
//		Input any   `json:"input"`
//		Args  []any `json:"args"`
//	}
//
//	func apply(ctx handler.Context, req ApplyRequest) handler.Response {
//		out, err := reg.Apply(chi.URLParam(ctx.Request(), "name"), req.Input, req.Args...)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(Result{Result: out})
//	}
//
//	r.Post("/filters/{name}", handler.Wrap(apply,
//		handler.WithBinder[ApplyRequest](binder.BindJSON(1<<20)),
//		handler.WithErrorHandler[ApplyRequest](handler.NewErrorHandler(log, mapLiquidError)),
//	))
//
// All JSON bodies share one envelope: {"data": ..., "meta": ..., "error": {"code", "message"}}.
// Domain errors are translated to HTTP statuses by ErrorMapper functions or by
// wrapping an HTTPError.
package handler
