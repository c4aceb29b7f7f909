package xmlbuilder

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/lestrrat-go/xmlbuilder/internal/orderedmap"
	"github.com/lestrrat-go/xmlbuilder/internal/pool"
)

// contentType discriminates the three shapes element content can take.
// An element is either self-closing, a container of child elements, or
// a text leaf; the XML grammar has no hybrid of the last two, and the
// tri-state encodes that rule instead of scattering checks over a
// generic content field.
type contentType int

const (
	contentEmpty contentType = iota
	contentChildren
	contentText
)

// Element represents a single XML element: a tag name, attributes in
// insertion order, and either child elements or text, never both.
//
// Content transitions one way only. A freshly created element is
// empty; the first AddChild makes it a container for good, and AddText
// makes it a text leaf for good. Crossing over is a programming error
// and panics (see ErrTextContent and ErrNonEmptyContent).
type Element struct {
	name     string
	attrs    *orderedmap.Map[string, string]
	ctype    contentType
	children []*Element
	text     string
}

// New creates a new empty Element using the given name for the tag.
// The name is emitted as-is; it is not checked against XML name syntax.
func New(name string) *Element {
	return &Element{
		name:  name,
		attrs: orderedmap.New[string, string](),
	}
}

// Name returns the tag name of the element.
func (e *Element) Name() string {
	return e.name
}

// AddAttribute sets the attribute with the given name. The value may be
// of any type; it is stringified with fmt.Sprint and escaped before it
// is stored. Setting a name that already exists replaces its value but
// keeps the attribute's original position in the emission order.
func (e *Element) AddAttribute(name string, value any) {
	e.attrs.Set(name, EscapeString(fmt.Sprint(value)))
}

// Attributes populates the given slice with the attribute names of the
// element in insertion order. If the slice is nil, a new one is
// allocated.
func (e *Element) Attributes(dst []string) []string {
	if dst == nil {
		dst = make([]string, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for name := range e.attrs.Range() {
		dst = append(dst, name)
	}
	return dst
}

// AddChild appends child to the element's content, after any children
// added previously. The element takes ownership of child; the caller
// must not mutate it afterwards.
//
// This method may only be called on an element that has children or is
// empty. It panics with ErrTextContent if the element carries text.
func (e *Element) AddChild(child *Element) {
	switch e.ctype {
	case contentEmpty:
		e.ctype = contentChildren
		e.children = append(e.children, child)
	case contentChildren:
		e.children = append(e.children, child)
	default:
		panic(ErrTextContent)
	}
}

// AddText sets the text content of the element. The value may be of any
// type; it is stringified with fmt.Sprint and escaped before it is
// stored.
//
// This method may only be called on an empty element. It panics with
// ErrNonEmptyContent otherwise.
func (e *Element) AddText(value any) {
	if e.ctype != contentEmpty {
		panic(ErrNonEmptyContent)
	}
	e.ctype = contentText
	e.text = EscapeString(fmt.Sprint(value))
}

// Write serializes an XML document to out, with this element as the
// document root. Output is indented with one tab per nesting level and
// starts with a fixed UTF-8 XML declaration.
//
// Write does not mutate the element; the same tree may be written any
// number of times. The first error from out aborts the traversal and is
// returned, possibly leaving a truncated document in the sink.
func (e *Element) Write(out io.Writer) error {
	return e.WriteContext(context.Background(), out)
}

// WriteContext is Write with a context. A trace logger attached to ctx
// via WithTraceLogger receives one event per emitted element.
func (e *Element) WriteContext(ctx context.Context, out io.Writer) error {
	var d Dumper
	return d.DumpElement(ctx, out, e)
}

// String returns the serialized document as a string, exactly as Write
// would emit it. The sink is a memory buffer and every stored payload
// is escaped text, so unlike Write this cannot fail.
func (e *Element) String() string {
	bs := pool.ByteSlice()
	buf := bytes.NewBuffer(bs.Get())
	defer func() {
		bs.Put(buf.Bytes())
	}()
	if err := e.Write(buf); err != nil {
		// bytes.Buffer does not return write errors
		panic(fmt.Sprintf("xmlbuilder: write to memory buffer failed: %s", err))
	}
	return buf.String()
}
