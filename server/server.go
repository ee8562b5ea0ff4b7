// Package server wires the parsers, macros, transformations and renderers into a rendering pipeline.
package server

import (
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/bufpool"
	"github.com/influxdata/xdom/errorblock"
	"github.com/influxdata/xdom/keyvalue"
	"github.com/influxdata/xdom/macro"
	"github.com/influxdata/xdom/macro/builtin"
	"github.com/influxdata/xdom/macro/engine"
	"github.com/influxdata/xdom/macro/script"
	"github.com/influxdata/xdom/parser"
	mdparser "github.com/influxdata/xdom/parser/markdown"
	"github.com/influxdata/xdom/parser/plain"
	"github.com/influxdata/xdom/renderer"
	"github.com/influxdata/xdom/renderer/event"
	mdrenderer "github.com/influxdata/xdom/renderer/markdown"
	plainrenderer "github.com/influxdata/xdom/renderer/plain"
	"github.com/influxdata/xdom/services/diagnostic"
	"github.com/influxdata/xdom/syntax"
	"github.com/influxdata/xdom/transform"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// BuildInfo represents the build details for the server code.
type BuildInfo struct {
	Version string
	Commit  string
	Branch  string
}

type Diagnostic interface {
	Opened(syntaxes, renderers, macros int)
	RegisteredScriptMacro(id string)
	Rendered(in, out string, d time.Duration, size int)
	TransformationFailed(documentID string, err error)
	Error(msg string, err error, ctx ...keyvalue.T)
}

// Server holds the registries and transformations shared by rendering passes.
// Render is safe for concurrent use.
type Server struct {
	config *Config

	BuildInfo BuildInfo

	Parsers         *parser.Registry
	Renderers       *renderer.Registry
	Macros          *macro.MapRegistry
	Errors          *errorblock.CatalogGenerator
	MacroEngine     *engine.Engine
	Transformations *transform.Manager

	buffers *bufpool.Pool

	// Registry gathers the metrics of the server.
	Registry *prometheus.Registry
	rendered *prometheus.CounterVec

	Clock clock.Clock

	DiagService *diagnostic.Service
	Diag        Diagnostic
}

// New returns a new instance of Server built from a config.
func New(c *Config, buildInfo BuildInfo, diagService *diagnostic.Service) (*Server, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s. To generate a valid configuration file run `xrender config > xrender.generated.conf`.", err)
	}
	s := &Server{
		config:      c,
		BuildInfo:   buildInfo,
		Registry:    prometheus.NewRegistry(),
		Clock:       clock.New(),
		DiagService: diagService,
		Diag:        diagService.NewServerHandler(),
		buffers:     bufpool.New(),
	}
	s.rendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xdom_documents_rendered_total",
		Help: "Number of documents rendered, by input and output syntax.",
	}, []string{"input", "output"})
	s.Registry.MustRegister(s.rendered)

	s.appendParsers()
	s.appendRenderers()
	s.appendMacros()
	s.initMacroEngine()

	s.Transformations = transform.NewManager(s.MacroEngine)

	s.Diag.Opened(len(s.Parsers.Syntaxes()), len(s.Renderers.Syntaxes()), len(s.Macros.IDs(syntax.Syntax{})))
	return s, nil
}

func (s *Server) appendParsers() {
	s.Parsers = parser.NewRegistry(
		mdparser.New(),
		plain.New(),
	)
}

func (s *Server) appendRenderers() {
	s.Renderers = renderer.NewRegistry(
		event.New(),
		plainrenderer.New(),
		mdrenderer.New(mdrenderer.Normalize(s.config.Renderer.NormalizeMarkdown)),
	)
}

func (s *Server) appendMacros() {
	s.Macros = macro.NewMapRegistry()
	builtin.Register(s.Macros)
	if s.config.Restricted {
		return
	}
	script.Register(s.Macros, s.config.Scripts)
	for _, c := range s.config.Scripts {
		s.Diag.RegisteredScriptMacro(c.ID)
	}
}

func (s *Server) initMacroEngine() {
	s.Errors = errorblock.New()
	s.MacroEngine = engine.New(
		s.config.Macro,
		s.Macros,
		s.Errors,
		s.DiagService.NewMacroTransformationHandler(),
		engine.WithMetrics(engine.NewMetrics(s.Registry)),
		engine.WithContentParser(macro.NewContentParser(s.Parsers)),
		engine.WithClock(s.Clock),
	)
}

// Parse reads a document in the syntax syn.
func (s *Server) Parse(in io.Reader, syn syntax.Syntax) (*block.XDOM, error) {
	p, err := s.Parsers.Parser(syn)
	if err != nil {
		return nil, err
	}
	x, err := p.Parse(in)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s document", syn)
	}
	return x, nil
}

// Transform runs the transformations on a document parsed from syn, to be rendered in target.
// Macro failures are replaced by error blocks and are not returned.
func (s *Server) Transform(x *block.XDOM, syn, target syntax.Syntax) error {
	ctx := transform.NewContext(x, syn)
	ctx.TargetSyntax = target
	ctx.Restricted = s.config.Restricted
	if err := s.Transformations.Perform(x, ctx); err != nil {
		s.Diag.TransformationFailed(ctx.ID, err)
		return err
	}
	return nil
}

// Render parses in, transforms the document and writes it to out.
// The default output syntax is used when outSyntax is zero.
func (s *Server) Render(in io.Reader, inSyntax syntax.Syntax, out io.Writer, outSyntax syntax.Syntax) error {
	if outSyntax.Zero() {
		outSyntax = s.config.Renderer.DefaultSyntax
	}
	r, err := s.Renderers.Renderer(outSyntax)
	if err != nil {
		return err
	}

	start := s.Clock.Now()
	x, err := s.Parse(in, inSyntax)
	if err != nil {
		return err
	}
	if err := s.Transform(x, inSyntax, outSyntax); err != nil {
		return err
	}
	buf := s.buffers.Get()
	defer buf.Close()
	if err := r.Render(x, buf); err != nil {
		s.Diag.Error("failed to render document", err, keyvalue.KV("syntax", outSyntax.String()))
		return errors.Wrapf(err, "failed to render %s document", outSyntax)
	}
	size := buf.Len()
	if _, err := buf.WriteTo(out); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	s.rendered.WithLabelValues(inSyntax.String(), outSyntax.String()).Inc()
	s.Diag.Rendered(inSyntax.String(), outSyntax.String(), s.Clock.Since(start), size)
	return nil
}

// MacroDescriptors returns the descriptors of the macros available in syn, sorted by id.
// Macros failing to load are reported and skipped.
func (s *Server) MacroDescriptors(syn syntax.Syntax) []*macro.Descriptor {
	var descriptors []*macro.Descriptor
	for _, id := range s.Macros.IDs(syn) {
		m, err := s.Macros.Macro(id, syn)
		if err != nil {
			s.Diag.Error("failed to load macro", err, keyvalue.KV("macro", id))
			continue
		}
		descriptors = append(descriptors, m.Descriptor())
	}
	return descriptors
}
