package markdown

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/pkg/errors"
)

// tag is a macro tag: {{id k="v"}}, {{id k="v"/}} or {{/id}}.
type tag struct {
	Closing   bool     `parser:"\"{\" \"{\" @\"/\"?"`
	ID        string   `parser:"@Ident"`
	Params    []*param `parser:"@@*"`
	SelfClose bool     `parser:"@\"/\"? \"}\" \"}\""`
}

type param struct {
	Key   string `parser:"@Ident \"=\""`
	Value string `parser:"@String"`
}

var (
	tagLexer = stateful.MustSimple([]stateful.Rule{
		{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_.\-]*`, Action: nil},
		{Name: "String", Pattern: `"(\\"|[^"])*"`, Action: nil},
		{Name: "Punct", Pattern: `[{}/=]`, Action: nil},
		{Name: "Whitespace", Pattern: `\s+`, Action: nil},
	})

	tagParser = participle.MustBuild(&tag{},
		participle.Lexer(tagLexer),
		participle.Unquote("String"),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	// tagPattern finds the text of candidate tags, which is then parsed by tagParser.
	tagPattern  = regexp.MustCompile(`\{\{/?[a-zA-Z][a-zA-Z0-9_.\-]*(?:\s+[a-zA-Z][a-zA-Z0-9_.\-]*="(?:\\"|[^"])*")*\s*/?\}\}`)
	leadingTag  = regexp.MustCompile(`^` + tagPattern.String())
	fenceMarker = regexp.MustCompile("^ {0,3}(```|~~~)")
)

func parseTag(text string) (*tag, error) {
	t := new(tag)
	if err := tagParser.ParseString("", text, t); err != nil {
		return nil, errors.Wrapf(err, "invalid macro tag %q", text)
	}
	return t, nil
}

func (t *tag) parameters() *listener.Parameters {
	if len(t.Params) == 0 {
		return nil
	}
	p := listener.NewParameters()
	for _, kv := range t.Params {
		p.Set(kv.Key, kv.Value)
	}
	return p
}

// findClosing returns the start and end of the tag closing the macro id in text,
// skipping nested macros with the same id.
func findClosing(text, id string) (int, int, bool) {
	depth := 0
	for _, loc := range tagPattern.FindAllStringIndex(text, -1) {
		t, err := parseTag(text[loc[0]:loc[1]])
		if err != nil || t.ID != id || t.SelfClose {
			continue
		}
		if !t.Closing {
			depth++
			continue
		}
		if depth == 0 {
			return loc[0], loc[1], true
		}
		depth--
	}
	return 0, 0, false
}

// segment is either Markdown source or a standalone macro.
type segment struct {
	source string
	macro  *block.Macro
}

// splitStandalone extracts the standalone macros of src: macros starting a block
// whose tags are alone on their lines. Fenced code is left untouched.
func splitStandalone(src string) []segment {
	var (
		segments  []segment
		mdStart   int
		prevBlank = true
		inFence   bool
		fence     string
	)
	pos := 0
	for pos < len(src) {
		lineEnd := strings.IndexByte(src[pos:], '\n')
		if lineEnd < 0 {
			lineEnd = len(src)
		} else {
			lineEnd += pos
		}
		line := src[pos:lineEnd]

		if m := fenceMarker.FindStringSubmatch(line); m != nil {
			switch {
			case !inFence:
				inFence, fence = true, m[1]
			case m[1] == fence:
				inFence = false
			}
		} else if !inFence && prevBlank {
			if mb, end, ok := standaloneMacro(src, pos); ok {
				if mdStart < pos {
					segments = append(segments, segment{source: src[mdStart:pos]})
				}
				segments = append(segments, segment{macro: mb})
				pos, mdStart, prevBlank = end, end, true
				continue
			}
		}

		prevBlank = strings.TrimSpace(line) == ""
		pos = lineEnd + 1
	}
	if mdStart < len(src) {
		segments = append(segments, segment{source: src[mdStart:]})
	}
	return segments
}

// standaloneMacro parses the macro starting at pos, returning it and the position of the next line.
func standaloneMacro(src string, pos int) (*block.Macro, int, bool) {
	loc := leadingTag.FindStringIndex(src[pos:])
	if loc == nil {
		return nil, 0, false
	}
	open, err := parseTag(src[pos : pos+loc[1]])
	if err != nil || open.Closing {
		return nil, 0, false
	}
	after := pos + loc[1]
	if open.SelfClose {
		end, ok := restOfLineBlank(src, after)
		if !ok {
			return nil, 0, false
		}
		return block.NewMacro(open.ID, open.parameters(), nil, false), end, true
	}

	closeStart, closeEnd, found := findClosing(src[after:], open.ID)
	if !found {
		end, ok := restOfLineBlank(src, after)
		if !ok {
			return nil, 0, false
		}
		return block.NewMacro(open.ID, open.parameters(), nil, false), end, true
	}
	end, ok := restOfLineBlank(src, after+closeEnd)
	if !ok {
		return nil, 0, false
	}
	content := src[after : after+closeStart]
	content = strings.TrimPrefix(strings.TrimPrefix(content, "\r"), "\n")
	content = strings.TrimSuffix(strings.TrimSuffix(content, "\n"), "\r")
	return block.NewMacro(open.ID, open.parameters(), &content, false), end, true
}

// restOfLineBlank reports whether only spaces follow pos on its line, and returns the start of the next line.
func restOfLineBlank(src string, pos int) (int, bool) {
	lineEnd := strings.IndexByte(src[pos:], '\n')
	if lineEnd < 0 {
		return len(src), strings.TrimSpace(src[pos:]) == ""
	}
	return pos + lineEnd + 1, strings.TrimSpace(src[pos:pos+lineEnd]) == ""
}

// inlineText converts text to blocks, turning the macro tags it contains into inline macros.
func inlineText(text string) []block.Block {
	var blocks []block.Block
	for text != "" {
		loc := tagPattern.FindStringIndex(text)
		if loc == nil {
			break
		}
		open, err := parseTag(text[loc[0]:loc[1]])
		if err != nil || open.Closing {
			blocks = append(blocks, block.Text(text[:loc[1]])...)
			text = text[loc[1]:]
			continue
		}
		blocks = append(blocks, block.Text(text[:loc[0]])...)
		rest := text[loc[1]:]
		var content *string
		if !open.SelfClose {
			if closeStart, closeEnd, found := findClosing(rest, open.ID); found {
				c := rest[:closeStart]
				content = &c
				rest = rest[closeEnd:]
			}
		}
		blocks = append(blocks, block.NewMacro(open.ID, open.parameters(), content, true))
		text = rest
	}
	return append(blocks, block.Text(text)...)
}
