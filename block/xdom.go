package block

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/influxdata/xdom/listener"
)

// XDOM is the root of a document.
type XDOM struct {
	Base
	metaData    *listener.MetaData
	idGenerator *IDGenerator
}

func NewXDOM(children []Block, md *listener.MetaData) *XDOM {
	if md == nil {
		md = listener.NewMetaData()
	}
	b := &XDOM{metaData: md, idGenerator: NewIDGenerator()}
	b.Init(b, children, nil)
	return b
}

func (b *XDOM) Before(l listener.Listener) { l.BeginDocument(b.metaData) }
func (b *XDOM) After(l listener.Listener)  { l.EndDocument(b.metaData) }

// MetaData returns the document metadata. It is never nil.
func (b *XDOM) MetaData() *listener.MetaData {
	return b.metaData
}

func (b *XDOM) IDGenerator() *IDGenerator {
	return b.idGenerator
}

func (b *XDOM) SetIDGenerator(g *IDGenerator) {
	b.idGenerator = g
}

func (b *XDOM) copyFields() {
	b.metaData = b.metaData.Copy()
	b.idGenerator = b.idGenerator.Copy()
}

const defaultIDPrefix = "id"

// IDGenerator produces anchor ids unique within a document.
type IDGenerator struct {
	ids map[string]bool
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{ids: make(map[string]bool)}
}

// GenerateUniqueID derives an id from text, keeping letters, digits and -_.: only.
// The first duplicate of an id gets the suffix "-1", the next "-2" and so on.
func (g *IDGenerator) GenerateUniqueID(prefix, text string) string {
	base := prefix + normalizeID(text)
	if base == "" {
		base = defaultIDPrefix
	}
	id := base
	for n := 1; g.ids[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	g.ids[id] = true
	return id
}

// Reserve marks id as used.
func (g *IDGenerator) Reserve(id string) {
	g.ids[id] = true
}

func (g *IDGenerator) Reset() {
	g.ids = make(map[string]bool)
}

func (g *IDGenerator) Copy() *IDGenerator {
	c := NewIDGenerator()
	if g == nil {
		return c
	}
	for id := range g.ids {
		c.ids[id] = true
	}
	return c
}

func normalizeID(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == '-', r == '_', r == '.', r == ':':
			return r
		default:
			return -1
		}
	}, text)
}
