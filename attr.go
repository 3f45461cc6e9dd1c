package runenv

import (
	"context"
	"log/slog"
)

// LogValue implements slog.LogValuer, grouping the whole classification under
// one attribute:
//
//	logger.Info("starting", slog.Any("runenv", ctx))
func (c *Context) LogValue() slog.Value {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slog.GroupValue(
		slog.String("env", string(c.env)),
		slog.Bool("debug", c.debug),
		slog.Bool("testing", c.testing),
		slog.String("mode", string(c.mode)),
	)
}

// LogAttrs returns the classification as individual slog attributes, for
// loggers that attach them at construction time.
func (c *Context) LogAttrs() []slog.Attr {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return []slog.Attr{
		slog.String("env", string(c.env)),
		slog.Bool("debug", c.debug),
		slog.Bool("testing", c.testing),
		slog.String("mode", string(c.mode)),
	}
}

// LoggerExtractor returns a context extractor that injects the running
// environment carried by a context.Context into slog records under the key
// "env".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
