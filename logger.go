package longshadow

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Renderers log on each call, so the
// default handler must report itself disabled before any attrs are built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is shared by all renderers in the process.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the renderer's debug records to l; nil silences them
// again. Records are emitted at [slog.LevelDebug] only, with messages
// prefixed "longshadow:":
//
//   - "longshadow: renderer created": surface and mask sizes
//   - "longshadow: render": resolved angle, throw distance, origin and the
//     number of extrusion copies drawn
//
// Drawing done inside gg (path filling, GPU fallbacks) logs through
// gg.SetLogger, which is configured separately.
//
//	longshadow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set with SetLogger, or a silent one.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
