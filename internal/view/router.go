package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// FaultMessage replaces the output of a page whose renderer failed.
const FaultMessage = "System Reset Required. Please refresh browser."

// RenderFunc writes the body of one page for the given state.
type RenderFunc func(ctx context.Context, w io.Writer, s State) error

// Result describes what RenderCurrent produced.
type Result struct {
	View    View // the view whose renderer ran
	Chrome  bool // whether the layout should add navbar and footer
	Faulted bool
}

// Router dispatches rendering through a lookup table.
type Router struct {
	pages map[View]RenderFunc
	log   zerolog.Logger
}

// NewRouter creates an empty router.
func NewRouter(log zerolog.Logger) *Router {
	return &Router{pages: make(map[View]RenderFunc), log: log}
}

// Handle registers fn as the renderer of v.
func (r *Router) Handle(v View, fn RenderFunc) {
	r.pages[v] = fn
}

// Handles reports whether v has a renderer.
func (r *Router) Handles(v View) bool {
	_, ok := r.pages[v]
	return ok
}

// Resolve returns the view that will actually render for s. Views with no
// renderer resolve to Home.
func (r *Router) Resolve(s State) View {
	if _, ok := r.pages[s.Current]; ok {
		return s.Current
	}
	return Home
}

// RenderCurrent renders the page for s into w. It never fails: a renderer
// that returns an error or panics is logged and its partial output is
// replaced by FaultMessage.
func (r *Router) RenderCurrent(ctx context.Context, w io.Writer, s State) Result {
	v := r.Resolve(s)
	res := Result{View: v, Chrome: ShowsChrome(s.Current)}

	fn, ok := r.pages[v]
	if !ok {
		res.Faulted = true
		writeFault(w)
		return res
	}

	var buf bytes.Buffer
	if err := r.safeRender(ctx, fn, &buf, s); err != nil {
		r.log.Error().Err(err).Str("view", string(v)).Msg("view rendering error")
		res.Faulted = true
		writeFault(w)
		return res
	}

	if _, err := buf.WriteTo(w); err != nil {
		r.log.Debug().Err(err).Str("view", string(v)).Msg("writing rendered view")
	}
	return res
}

func (r *Router) safeRender(ctx context.Context, fn RenderFunc, w io.Writer, s State) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
		}
	}()
	return fn(ctx, w, s)
}

func writeFault(w io.Writer) {
	io.WriteString(w, `<div class="render-fault">`+FaultMessage+`</div>`)
}
