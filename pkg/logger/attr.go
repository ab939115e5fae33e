package logger

import "log/slog"

// Attribute constructors used across the composer so log keys stay
// consistent between the preview server and the senders.

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Template records the template name under the key "template".
func Template(name string) slog.Attr {
	return slog.String("template", name)
}

// BlockID records a block identifier under the key "block_id".
func BlockID(id string) slog.Attr {
	return slog.String("block_id", id)
}

// Recipient records the recipient address under the key "to".
func Recipient(addr string) slog.Attr {
	return slog.String("to", addr)
}
