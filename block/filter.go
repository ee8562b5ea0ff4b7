package block

// Filter rewrites cloned blocks.
// Filter receives a cloned block whose children were already filtered and returns its replacement.
// An empty result replaces the block by its children.
type Filter interface {
	Filter(b Block) []Block
}

type FilterFunc func(b Block) []Block

func (f FilterFunc) Filter(b Block) []Block { return f(b) }

// PlainTextFilter keeps text level blocks only.
// Links without a label are replaced by the text of their reference.
var PlainTextFilter Filter = FilterFunc(plainText)

func plainText(b Block) []Block {
	switch b := b.(type) {
	case *Word, *Space, *SpecialSymbol, *NewLine:
		return []Block{b}
	case *Link:
		if len(b.Children()) == 0 {
			return Text(b.Reference.Reference)
		}
	}
	return nil
}
