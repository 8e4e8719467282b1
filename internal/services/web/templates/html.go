package templates

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/a-h/templ"
)

// markup is HTML that is already safe to write as-is.
type markup string

// htmlWriter accumulates the first write error so component bodies can be
// written as straight-line code.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped for HTML text and attribute contexts.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// rawf formats into the output. The format is trusted; every string-like
// argument is escaped unless it is markup.
func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, escapeArgs(args)...))
}

func escapeArgs(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		out[i] = escapeArg(arg)
	}
	return out
}

func escapeArg(arg any) any {
	switch v := arg.(type) {
	case nil:
		return ""
	case markup:
		return string(v)
	case fmt.Stringer:
		return templ.EscapeString(v.String())
	case error:
		return templ.EscapeString(v.Error())
	}
	if rv := reflect.ValueOf(arg); rv.Kind() == reflect.String {
		return templ.EscapeString(rv.String())
	}
	return arg
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(body func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		body(ctx, h)
		return h.err
	})
}
