package xmlbuilder

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/xmlbuilder/internal/pool"
)

// xmlDecl is emitted verbatim at the start of every document,
// regardless of document content.
const xmlDecl = `<?xml version = "1.0" encoding = "UTF-8"?>` + "\n"

// Dumper serializes an Element tree to a writer, one indented line per
// tag. The zero value is ready to use; Element.Write is a convenience
// wrapper around it.
type Dumper struct{}

// DumpElement writes the XML document rooted at e to out: the XML
// declaration first, then the tree depth-first with one tab of
// indentation per nesting level. The first write error aborts the
// traversal.
func (d *Dumper) DumpElement(ctx context.Context, out io.Writer, e *Element) error {
	if _, err := io.WriteString(out, xmlDecl); err != nil {
		return err
	}
	return d.dumpElement(ctx, out, e, 0)
}

func (d *Dumper) dumpElement(ctx context.Context, out io.Writer, e *Element, level int) error {
	tlog := getTraceLogFromContext(ctx)
	tlog.DebugContext(ctx, "dump element",
		slog.String("name", e.name),
		slog.Int("level", level),
	)

	bs := pool.ByteSlice()
	line := bs.Get()
	defer func() {
		bs.Put(line)
	}()

	prefix := strings.Repeat("\t", level)
	line = append(line, prefix...)
	line = append(line, '<')
	line = append(line, e.name...)
	line = d.appendAttributes(line, e)

	switch e.ctype {
	case contentEmpty:
		line = append(line, " />\n"...)
		_, err := out.Write(line)
		return err
	case contentText:
		// text stays on the tag's line; embedded newlines in the
		// stored text pass through untouched
		line = append(line, '>')
		line = append(line, e.text...)
		line = append(line, "</"...)
		line = append(line, e.name...)
		line = append(line, ">\n"...)
		_, err := out.Write(line)
		return err
	}

	line = append(line, ">\n"...)
	if _, err := out.Write(line); err != nil {
		return err
	}

	for _, child := range e.children {
		if err := d.dumpElement(ctx, out, child, level+1); err != nil {
			return err
		}
	}

	line = line[:0]
	line = append(line, prefix...)
	line = append(line, "</"...)
	line = append(line, e.name...)
	line = append(line, ">\n"...)
	_, err := out.Write(line)
	return err
}

// appendAttributes appends one ` name="value"` fragment per attribute,
// in insertion order. Values were escaped when they were added.
func (d *Dumper) appendAttributes(dst []byte, e *Element) []byte {
	for name, value := range e.attrs.Range() {
		dst = append(dst, ' ')
		dst = append(dst, name...)
		dst = append(dst, `="`...)
		dst = append(dst, value...)
		dst = append(dst, '"')
	}
	return dst
}
