// Package block implements the document tree: blocks, structural mutation, traversal and cloning.
package block

import (
	"reflect"

	"github.com/influxdata/xdom/listener"
	"github.com/pkg/errors"
)

// ErrBlockNotFound is returned when a reference block is not a child of the receiver.
var ErrBlockNotFound = errors.New("block not found")

// Block is a node of the document tree.
//
// Blocks are compared by identity: two blocks with the same content are distinct for tree mutations.
// A block is a child of at most one parent; adding it to another parent detaches it first.
type Block interface {
	// Before emits the begin event (or the singleton event) of the block.
	Before(l listener.Listener)
	// After emits the end event of the block, if any.
	After(l listener.Listener)
	// Traverse emits Before, the events of all children, then After.
	Traverse(l listener.Listener)

	Parent() Block
	Root() Block
	Children() []Block
	PreviousSibling() Block
	NextSibling() Block

	AddChild(child Block)
	AddChildren(children ...Block)
	SetChildren(children []Block)
	InsertChildBefore(child, next Block) error
	InsertChildAfter(child, previous Block) error
	ReplaceChild(replacements []Block, existing Block) error
	RemoveBlock(child Block) error
	IndexOf(b Block) int

	Parameter(key string) string
	Parameters() *listener.Parameters
	SetParameter(key, value string)
	SetParameters(params *listener.Parameters)

	GetBlocks(m Matcher, axes Axes) []Block
	GetFirstBlock(m Matcher, axes Axes) Block

	// Clone deep copies the block and its descendants.
	// The filter, if not nil, is applied to every cloned descendant.
	Clone(f Filter) Block

	base() *Base
}

// fieldCopier is implemented by blocks holding reference typed fields that must not be shared by clones.
type fieldCopier interface {
	copyFields()
}

// Base implements the tree operations common to all blocks.
// Block types embed it and call Init from their constructor.
type Base struct {
	self     Block
	parent   Block
	children []Block
	params   *listener.Parameters
}

// Init binds the base to the block embedding it and attaches the children.
func (b *Base) Init(self Block, children []Block, params *listener.Parameters) {
	b.self = self
	if params != nil {
		b.params = params.Copy()
	}
	b.SetChildren(children)
}

func (b *Base) base() *Base { return b }

func (b *Base) Before(listener.Listener) {}
func (b *Base) After(listener.Listener)  {}

func (b *Base) Traverse(l listener.Listener) {
	b.self.Before(l)
	for _, c := range b.children {
		c.Traverse(l)
	}
	b.self.After(l)
}

func (b *Base) Parent() Block {
	return b.parent
}

func (b *Base) Root() Block {
	root := b.self
	for p := b.parent; p != nil; p = p.Parent() {
		root = p
	}
	return root
}

// Children returns the child list. It must not be modified directly.
func (b *Base) Children() []Block {
	return b.children
}

func (b *Base) PreviousSibling() Block {
	if b.parent == nil {
		return nil
	}
	siblings := b.parent.Children()
	if i := indexOf(siblings, b.self); i > 0 {
		return siblings[i-1]
	}
	return nil
}

func (b *Base) NextSibling() Block {
	if b.parent == nil {
		return nil
	}
	siblings := b.parent.Children()
	if i := indexOf(siblings, b.self); i >= 0 && i < len(siblings)-1 {
		return siblings[i+1]
	}
	return nil
}

func (b *Base) AddChild(child Block) {
	b.adopt(child)
	b.children = append(b.children, child)
}

func (b *Base) AddChildren(children ...Block) {
	for _, c := range children {
		b.AddChild(c)
	}
}

// SetChildren replaces all children at once. Previous children are detached.
func (b *Base) SetChildren(children []Block) {
	for _, c := range b.children {
		c.base().parent = nil
	}
	b.children = nil
	for _, c := range children {
		b.AddChild(c)
	}
}

// InsertChildBefore inserts child right before next. A nil next appends the child.
func (b *Base) InsertChildBefore(child, next Block) error {
	if next == nil {
		b.AddChild(child)
		return nil
	}
	// A block cannot be its own reference.
	if child == next || indexOf(b.children, next) < 0 {
		return errors.WithStack(ErrBlockNotFound)
	}
	b.adopt(child)
	b.splice(indexOf(b.children, next), child)
	return nil
}

// InsertChildAfter inserts child right after previous. A nil previous prepends the child.
func (b *Base) InsertChildAfter(child, previous Block) error {
	if previous == nil {
		b.adopt(child)
		b.splice(0, child)
		return nil
	}
	if child == previous || indexOf(b.children, previous) < 0 {
		return errors.WithStack(ErrBlockNotFound)
	}
	b.adopt(child)
	b.splice(indexOf(b.children, previous)+1, child)
	return nil
}

// ReplaceChild replaces existing with zero or more blocks, at its exact position.
// The replaced block is detached from the tree.
func (b *Base) ReplaceChild(replacements []Block, existing Block) error {
	i := indexOf(b.children, existing)
	if i < 0 {
		return errors.WithStack(ErrBlockNotFound)
	}
	var previous Block
	if i > 0 {
		previous = b.children[i-1]
	}
	b.removeAt(i)
	existing.base().parent = nil

	for _, r := range replacements {
		b.adopt(r)
	}
	at := 0
	if previous != nil {
		at = indexOf(b.children, previous) + 1
	}
	b.splice(at, replacements...)
	return nil
}

func (b *Base) RemoveBlock(child Block) error {
	return b.ReplaceChild(nil, child)
}

// IndexOf returns 0 when other is the receiver itself, the 1-based position of other
// among the children, or -1 when other is not a child.
func (b *Base) IndexOf(other Block) int {
	if other == b.self {
		return 0
	}
	if i := indexOf(b.children, other); i >= 0 {
		return i + 1
	}
	return -1
}

func (b *Base) Parameter(key string) string {
	return b.params.Value(key)
}

// Parameters returns the block parameters, possibly nil. They must not be modified directly.
func (b *Base) Parameters() *listener.Parameters {
	return b.params
}

func (b *Base) SetParameter(key, value string) {
	if b.params == nil {
		b.params = listener.NewParameters()
	}
	b.params.Set(key, value)
}

// SetParameters replaces all parameters with a copy of params.
func (b *Base) SetParameters(params *listener.Parameters) {
	b.params = params.Copy()
}

func (b *Base) Clone(f Filter) Block {
	return clone(b.self, f)
}

// adopt detaches child from its current parent and makes the receiver its parent.
func (b *Base) adopt(child Block) {
	cb := child.base()
	if cb.parent != nil {
		pb := cb.parent.base()
		if i := indexOf(pb.children, child); i >= 0 {
			pb.removeAt(i)
		}
	}
	cb.parent = b.self
}

func (b *Base) removeAt(i int) {
	children := make([]Block, 0, len(b.children)-1)
	children = append(children, b.children[:i]...)
	b.children = append(children, b.children[i+1:]...)
}

func (b *Base) splice(at int, blocks ...Block) {
	children := make([]Block, 0, len(b.children)+len(blocks))
	children = append(children, b.children[:at]...)
	children = append(children, blocks...)
	b.children = append(children, b.children[at:]...)
}

func indexOf(blocks []Block, b Block) int {
	for i, c := range blocks {
		if c == b {
			return i
		}
	}
	return -1
}

func clone(b Block, f Filter) Block {
	v := reflect.ValueOf(b).Elem()
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	c := cp.Interface().(Block)

	cb := c.base()
	cb.self = c
	cb.parent = nil
	cb.children = nil
	if cb.params != nil {
		cb.params = cb.params.Copy()
	}
	if fc, ok := c.(fieldCopier); ok {
		fc.copyFields()
	}

	for _, child := range b.Children() {
		cc := clone(child, f)
		if f == nil {
			c.AddChild(cc)
			continue
		}
		filtered := f.Filter(cc)
		if len(filtered) == 0 {
			filtered = append([]Block(nil), cc.Children()...)
		}
		c.AddChildren(filtered...)
	}
	return c
}
