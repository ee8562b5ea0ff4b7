// Package markdown parses Markdown 1.2 documents.
//
// Macros are written {{id param="value"}}content{{/id}} or {{id param="value"/}}.
// A macro alone on its lines at the start of a block is standalone, any other macro is inline.
// A document may start with a YAML front matter block delimited by "---" lines, which becomes the document metadata.
package markdown

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/influxdata/xdom/block"
	"github.com/influxdata/xdom/listener"
	"github.com/influxdata/xdom/syntax"
	"github.com/pkg/errors"
	"github.com/russross/blackfriday/v2"
)

const frontMatterDelimiter = "---"

const extensions = blackfriday.CommonExtensions

type Parser struct{}

func New() *Parser {
	return new(Parser)
}

func (*Parser) Syntax() syntax.Syntax { return syntax.Markdown12 }

func (*Parser) Parse(r io.Reader) (*block.XDOM, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read markdown")
	}
	src := strings.ReplaceAll(string(data), "\r\n", "\n")

	md, src, err := frontMatter(src)
	if err != nil {
		return nil, err
	}
	md.Add(listener.MetaDataSyntax, syntax.Markdown12.String())

	x := block.NewXDOM(nil, md)
	c := &converter{ids: x.IDGenerator()}
	for _, s := range splitStandalone(src) {
		if s.macro != nil {
			x.AddChild(s.macro)
			continue
		}
		root := blackfriday.New(blackfriday.WithExtensions(extensions)).Parse([]byte(s.source))
		x.AddChildren(c.children(root)...)
	}
	return x, nil
}

// frontMatter splits the YAML front matter from the rest of src.
func frontMatter(src string) (*listener.MetaData, string, error) {
	if !strings.HasPrefix(src, frontMatterDelimiter+"\n") {
		return listener.NewMetaData(), src, nil
	}
	rest := src[len(frontMatterDelimiter)+1:]
	var header, body string
	switch {
	case strings.HasPrefix(rest, frontMatterDelimiter+"\n"):
		body = rest[len(frontMatterDelimiter)+1:]
	case rest == frontMatterDelimiter:
	default:
		end := strings.Index(rest, "\n"+frontMatterDelimiter+"\n")
		if end < 0 {
			if !strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
				return listener.NewMetaData(), src, nil
			}
			end = len(rest) - len(frontMatterDelimiter) - 1
			header = rest[:end]
		} else {
			header = rest[:end]
			body = rest[end+len(frontMatterDelimiter)+2:]
		}
	}

	values := make(map[string]interface{})
	if err := yaml.Unmarshal([]byte(header), &values); err != nil {
		return nil, "", errors.Wrap(err, "invalid front matter")
	}
	return listener.NewMetaDataFrom(values), body, nil
}
