package block

import "fmt"

// Axes selects the blocks a search walks through, relative to a starting block.
type Axes int

const (
	Self Axes = iota
	Parent
	Ancestor
	AncestorOrSelf
	Child
	Descendant
	DescendantOrSelf
	FollowingSibling
	PrecedingSibling
	Following
	Preceding
)

func (a Axes) String() string {
	switch a {
	case Self:
		return "SELF"
	case Parent:
		return "PARENT"
	case Ancestor:
		return "ANCESTOR"
	case AncestorOrSelf:
		return "ANCESTOR_OR_SELF"
	case Child:
		return "CHILD"
	case Descendant:
		return "DESCENDANT"
	case DescendantOrSelf:
		return "DESCENDANT_OR_SELF"
	case FollowingSibling:
		return "FOLLOWING_SIBLING"
	case PrecedingSibling:
		return "PRECEDING_SIBLING"
	case Following:
		return "FOLLOWING"
	case Preceding:
		return "PRECEDING"
	default:
		return fmt.Sprintf("Axes(%d)", int(a))
	}
}

// GetBlocks returns the blocks along axes accepted by m.
// Ancestors and siblings are returned nearest first, descendants in pre-order.
func (b *Base) GetBlocks(m Matcher, axes Axes) []Block {
	var found []Block
	walk(b.self, axes, func(c Block) bool {
		if m.Match(c) {
			found = append(found, c)
		}
		return true
	})
	return found
}

// GetFirstBlock returns the first block along axes accepted by m, or nil.
func (b *Base) GetFirstBlock(m Matcher, axes Axes) Block {
	var found Block
	walk(b.self, axes, func(c Block) bool {
		if m.Match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits the blocks along axes until visit returns false.
// It reports whether the walk completed.
func walk(b Block, axes Axes, visit func(Block) bool) bool {
	switch axes {
	case Self:
		return visit(b)
	case Parent:
		if p := b.Parent(); p != nil {
			return visit(p)
		}
		return true
	case Ancestor:
		for p := b.Parent(); p != nil; p = p.Parent() {
			if !visit(p) {
				return false
			}
		}
		return true
	case AncestorOrSelf:
		return visit(b) && walk(b, Ancestor, visit)
	case Child:
		for _, c := range b.Children() {
			if !visit(c) {
				return false
			}
		}
		return true
	case Descendant:
		for _, c := range b.Children() {
			if !walk(c, DescendantOrSelf, visit) {
				return false
			}
		}
		return true
	case DescendantOrSelf:
		return visit(b) && walk(b, Descendant, visit)
	case FollowingSibling:
		for s := b.NextSibling(); s != nil; s = s.NextSibling() {
			if !visit(s) {
				return false
			}
		}
		return true
	case PrecedingSibling:
		for s := b.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			if !visit(s) {
				return false
			}
		}
		return true
	case Following:
		for c := b; c != nil; c = c.Parent() {
			for s := c.NextSibling(); s != nil; s = s.NextSibling() {
				if !walk(s, DescendantOrSelf, visit) {
					return false
				}
			}
		}
		return true
	case Preceding:
		for c := b; c != nil; c = c.Parent() {
			for s := c.PreviousSibling(); s != nil; s = s.PreviousSibling() {
				if !walk(s, DescendantOrSelf, visit) {
					return false
				}
			}
		}
		return true
	default:
		panic(fmt.Sprintf("block: unknown axes %v", axes))
	}
}
