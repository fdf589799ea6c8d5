package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the client address under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// Filter records a filter name under the key "filter".
func Filter(name string) slog.Attr {
	return slog.String("filter", name)
}

// Pipeline records a filter pipeline expression under the key "pipeline".
func Pipeline(expr string) slog.Attr {
	return slog.String("pipeline", expr)
}

// Preset records a preset name under the key "preset".
func Preset(name string) slog.Attr {
	return slog.String("preset", name)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
