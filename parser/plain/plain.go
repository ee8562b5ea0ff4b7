// Package plain parses plain text into paragraphs.
package plain

import (
	"io"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
)

var blankLines = regexp.MustCompile(`\n[ \t]*\n\s*`)

// Parser reads paragraphs separated by blank lines.
// Line breaks inside a paragraph are kept as new lines.
type Parser struct{}

func New() *Parser {
	return new(Parser)
}

func (*Parser) Syntax() syntax.Syntax { return syntax.Plain10 }

func (*Parser) Parse(r io.Reader) (*block.XDOM, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read plain text")
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.Trim(text, "\n")

	var paragraphs []block.Block
	if strings.TrimSpace(text) != "" {
		for _, p := range blankLines.Split(text, -1) {
			p = strings.TrimRight(p, " \t\n")
			if p == "" {
				continue
			}
			paragraphs = append(paragraphs, block.NewParagraph(block.Text(p), nil))
		}
	}

	md := listener.NewMetaData()
	md.Add(listener.MetaDataSyntax, syntax.Plain10.String())
	return block.NewXDOM(paragraphs, md), nil
}
