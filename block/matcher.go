package block

import "reflect"

// Matcher is a predicate over blocks used by searches.
type Matcher interface {
	Match(b Block) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(b Block) bool

func (f MatcherFunc) Match(b Block) bool { return f(b) }

// AnyMatcher matches every block.
var AnyMatcher Matcher = MatcherFunc(func(Block) bool { return true })

// TypeMatcher matches blocks of the same concrete type as proto.
func TypeMatcher(proto Block) Matcher {
	t := reflect.TypeOf(proto)
	return MatcherFunc(func(b Block) bool {
		return reflect.TypeOf(b) == t
	})
}

// MacroMatcher matches unexecuted macros with the given id, or all of them when id is empty.
func MacroMatcher(id string) Matcher {
	return MatcherFunc(func(b Block) bool {
		m, ok := b.(*Macro)
		return ok && (id == "" || m.ID == id)
	})
}

// MacroMarkerMatcher matches macro markers with the given id, or all of them when id is empty.
func MacroMarkerMatcher(id string) Matcher {
	return MatcherFunc(func(b Block) bool {
		m, ok := b.(*MacroMarker)
		return ok && (id == "" || m.ID == id)
	})
}

// ParameterMatcher matches blocks whose parameter key has the given value.
func ParameterMatcher(key, value string) Matcher {
	return MatcherFunc(func(b Block) bool {
		v, ok := b.Parameters().Get(key)
		return ok && v == value
	})
}

// And matches blocks accepted by all matchers.
func And(matchers ...Matcher) Matcher {
	return MatcherFunc(func(b Block) bool {
		for _, m := range matchers {
			if !m.Match(b) {
				return false
			}
		}
		return true
	})
}

// Or matches blocks accepted by at least one matcher.
func Or(matchers ...Matcher) Matcher {
	return MatcherFunc(func(b Block) bool {
		for _, m := range matchers {
			if m.Match(b) {
				return true
			}
		}
		return false
	})
}
