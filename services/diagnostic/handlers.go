package diagnostic

import (
	"time"

	"github.com/influxdata/xdom/keyvalue"
	"github.com/influxdata/xdom/macro/engine"
	"go.uber.org/zap"
)

func fields(ctx []keyvalue.T, extra ...zap.Field) []zap.Field {
	fs := make([]zap.Field, 0, len(ctx)+len(extra))
	fs = append(fs, extra...)
	for _, kv := range ctx {
		fs = append(fs, zap.String(kv.Key, kv.Value))
	}
	return fs
}

func Err(l *zap.Logger, msg string, err error, ctx []keyvalue.T) {
	if len(ctx) == 0 {
		l.Error(msg, zap.Error(err))
		return
	}
	l.Error(msg, fields(ctx, zap.Error(err))...)
}

func Info(l *zap.Logger, msg string, ctx []keyvalue.T) {
	if len(ctx) == 0 {
		l.Info(msg)
		return
	}
	l.Info(msg, fields(ctx)...)
}

func Debug(l *zap.Logger, msg string, ctx []keyvalue.T) {
	if len(ctx) == 0 {
		l.Debug(msg)
		return
	}
	l.Debug(msg, fields(ctx)...)
}

// Macro transformation handler

type MacroTransformationHandler struct {
	l *zap.Logger
}

func (h *MacroTransformationHandler) WithContext(ctx ...keyvalue.T) engine.Diagnostic {
	return &MacroTransformationHandler{
		l: h.l.With(fields(ctx)...),
	}
}

func (h *MacroTransformationHandler) MacroNotFound(id string) {
	h.l.Warn("unknown macro", zap.String("macro", id))
}

func (h *MacroTransformationHandler) MacroLookupFailed(id string, err error) {
	h.l.Error("failed to lookup macro", zap.String("macro", id), zap.Error(err))
}

func (h *MacroTransformationHandler) MacroNotInline(id string) {
	h.l.Warn("standalone macro used inline", zap.String("macro", id))
}

func (h *MacroTransformationHandler) InvalidParameters(id string, err error) {
	h.l.Warn("invalid macro parameters", zap.String("macro", id), zap.Error(err))
}

func (h *MacroTransformationHandler) MacroFailed(id string, err error) {
	h.l.Error("macro execution failed", zap.String("macro", id), zap.Error(err))
}

func (h *MacroTransformationHandler) MacroExecuted(id string, d time.Duration, blocks int) {
	h.l.Debug("executed macro", zap.String("macro", id), zap.Duration("duration", d), zap.Int("blocks", blocks))
}

func (h *MacroTransformationHandler) MaxRecursionsReached(id string, max int) {
	h.l.Debug("maximum macro recursions reached, leaving macro unexpanded", zap.String("macro", id), zap.Int("max_recursions", max))
}

// Server handler

type ServerHandler struct {
	l *zap.Logger
}

func (h *ServerHandler) Opened(syntaxes, renderers, macros int) {
	h.l.Info("opened server", zap.Int("parsers", syntaxes), zap.Int("renderers", renderers), zap.Int("macros", macros))
}

func (h *ServerHandler) RegisteredScriptMacro(id string) {
	h.l.Debug("registered script macro", zap.String("macro", id))
}

func (h *ServerHandler) Rendered(in, out string, d time.Duration, size int) {
	h.l.Info("rendered document",
		zap.String("input_syntax", in),
		zap.String("output_syntax", out),
		zap.Duration("duration", d),
		zap.Int("bytes", size),
	)
}

func (h *ServerHandler) TransformationFailed(documentID string, err error) {
	h.l.Error("transformation failed", zap.String("transformation", documentID), zap.Error(err))
}

func (h *ServerHandler) Error(msg string, err error, ctx ...keyvalue.T) {
	Err(h.l, msg, err, ctx)
}

// Cmd handler

type CmdHandler struct {
	l *zap.Logger
}

func (h *CmdHandler) Starting(version, branch, commit string) {
	h.l.Debug("xrender starting", zap.String("version", version), zap.String("branch", branch), zap.String("commit", commit))
}

func (h *CmdHandler) WroteOutput(path string, size int) {
	h.l.Info("wrote output", zap.String("path", path), zap.Int("bytes", size))
}

func (h *CmdHandler) Info(msg string, ctx ...keyvalue.T) {
	Info(h.l, msg, ctx)
}

func (h *CmdHandler) Error(msg string, err error, ctx ...keyvalue.T) {
	Err(h.l, msg, err, ctx)
}
