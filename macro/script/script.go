// Package script implements macros written in Lua.
package script

import (
	"bytes"
	"context"
	"io/ioutil"
	"strings"
	"time"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/macro"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// unsafeGlobals are removed from the base library.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

// Macro runs a compiled Lua chunk in a new sandboxed state on every execution.
type Macro struct {
	c     Config
	d     *macro.Descriptor
	proto *lua.FunctionProto
}

// New compiles the script of c.
func New(c Config) (*Macro, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	source, name := c.Source, c.ID
	if source == "" {
		data, err := ioutil.ReadFile(c.File)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read script of macro %q", c.ID)
		}
		source, name = string(data), c.File
	}
	chunk, err := parse.Parse(bytes.NewBufferString(source), name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse script of macro %q", c.ID)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile script of macro %q", c.ID)
	}

	displayName := c.Name
	if displayName == "" {
		displayName = c.ID
	}
	return &Macro{
		c: c,
		d: &macro.Descriptor{
			ID:             c.ID,
			Name:           displayName,
			Description:    c.Description,
			SupportsInline: c.Inline,
			Content:        &macro.ContentDescriptor{Description: "Passed to the script as content"},
		},
		proto: proto,
	}, nil
}

// Factory returns a factory compiling the macro when it is first used.
func Factory(c Config) macro.Factory {
	return func() (macro.Macro, error) {
		return New(c)
	}
}

// Register registers a factory for each configured script macro.
func Register(r *macro.MapRegistry, configs []Config) {
	for _, c := range configs {
		r.RegisterFactory(c.ID, Factory(c))
	}
}

func (m *Macro) Descriptor() *macro.Descriptor { return m.d }
func (m *Macro) Priority() int                 { return m.c.Priority }

func (m *Macro) Execute(_ interface{}, content *string, ctx *macro.Context) ([]block.Block, error) {
	raw := ctx.CurrentMacroBlock.Parameters()
	for _, name := range m.c.Required {
		if _, ok := raw.Get(name); !ok {
			return nil, errors.Wrapf(macro.ErrMandatoryParameter, "parameter %q", name)
		}
	}

	L := newState()
	defer L.Close()

	timeout, cancel := context.WithTimeout(context.Background(), time.Duration(m.c.Timeout))
	defer cancel()
	L.SetContext(timeout)

	params := L.NewTable()
	raw.Range(func(k, v string) bool {
		params.RawSetString(k, lua.LString(v))
		return true
	})
	L.SetGlobal("params", params)
	if content != nil {
		L.SetGlobal("content", lua.LString(*content))
	}
	L.SetGlobal("inline", lua.LBool(ctx.Inline))

	L.Push(L.NewFunctionFromProto(m.proto))
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, errors.Wrapf(err, "script of macro %q failed", m.c.ID)
	}
	ret := L.Get(-1)
	L.Pop(1)

	if ret == lua.LNil {
		return nil, nil
	}
	text := lua.LVAsString(ret)
	if m.c.Markup {
		if ctx.Parser == nil {
			return nil, errors.Errorf("no content parser available for macro %q", m.c.ID)
		}
		return ctx.Parser.Parse(text, ctx, true, ctx.Inline)
	}
	if ctx.Inline {
		return block.Text(text), nil
	}
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, nil
	}
	return []block.Block{block.NewParagraph(block.Text(text), nil)}, nil
}

// newState creates a state with the base, table, string and math libraries only.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
