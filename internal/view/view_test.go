package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want View
		ok   bool
	}{
		{"resources", Resources, true},
		{"RESOURCES", Resources, true},
		{"Presentation", Presentation, true},
		{"resource_category", ResourceCategory, true},
		{"resource-category", ResourceCategory, true},
		{" admin_dashboard ", AdminDashboard, true},
		{"", "", false},
		{"nowhere", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundTripsSlug(t *testing.T) {
	for _, v := range All() {
		got, ok := Parse(v.Slug())
		require.True(t, ok, v)
		assert.Equal(t, v, got)
	}
}

func TestAllHasSixteenViews(t *testing.T) {
	views := All()
	assert.Len(t, views, 16)
	views[0] = "MUTATED"
	assert.Equal(t, Home, All()[0])
}

func TestShowsChrome(t *testing.T) {
	for _, v := range All() {
		assert.Equal(t, v != Presentation, ShowsChrome(v), v)
	}
}

func TestReduceNavigate(t *testing.T) {
	s := Initial()
	assert.Equal(t, Home, s.Current)

	s = Reduce(s, Navigate{Target: ResourceCategory, Category: "Shelter"})
	assert.Equal(t, ResourceCategory, s.Current)
	assert.Equal(t, "Shelter", s.Category)

	// Unknown values are accepted; the router decides what renders.
	s = Reduce(s, Navigate{Target: View("BOGUS")})
	assert.Equal(t, View("BOGUS"), s.Current)
}

func TestReduceIsPure(t *testing.T) {
	s := State{Current: Stories}
	next := Reduce(s, Navigate{Target: Contact})
	assert.Equal(t, Stories, s.Current)
	assert.Equal(t, Contact, next.Current)
	assert.Equal(t, s, Reduce(s, nil))
}

func TestReduceLaunch(t *testing.T) {
	start := State{Current: Chat, Category: "Legal Aid", Slide: 3}

	s := Reduce(start, Launch{Param: "resources"})
	assert.Equal(t, State{Current: Resources}, s)

	s = Reduce(start, Launch{Param: "no-such-page"})
	assert.Equal(t, Initial(), s)

	s = Reduce(start, Launch{})
	assert.Equal(t, Initial(), s)
}

func TestReduceSlides(t *testing.T) {
	s := Reduce(Initial(), Navigate{Target: Presentation})
	assert.Equal(t, 0, s.Slide)

	s = Reduce(s, PrevSlide{Count: 4})
	assert.Equal(t, 0, s.Slide)

	for i := 0; i < 10; i++ {
		s = Reduce(s, NextSlide{Count: 4})
	}
	assert.Equal(t, 3, s.Slide)

	s = Reduce(s, PrevSlide{Count: 4})
	assert.Equal(t, 2, s.Slide)

	// Slide actions outside the presentation are ignored.
	other := Reduce(State{Current: Home}, NextSlide{Count: 4})
	assert.Equal(t, 0, other.Slide)
}

func TestClampSlide(t *testing.T) {
	assert.Equal(t, 0, ClampSlide(-2, 5))
	assert.Equal(t, 4, ClampSlide(9, 5))
	assert.Equal(t, 2, ClampSlide(2, 5))
	assert.Equal(t, 0, ClampSlide(3, 0))
}

func newTestRouter() *Router {
	r := NewRouter(zerolog.Nop())
	for _, v := range All() {
		name := v
		r.Handle(v, func(_ context.Context, w io.Writer, _ State) error {
			_, err := fmt.Fprintf(w, "page:%s", name)
			return err
		})
	}
	return r
}

func TestRenderCurrentEveryView(t *testing.T) {
	r := newTestRouter()
	for _, v := range All() {
		var buf bytes.Buffer
		res := r.RenderCurrent(context.Background(), &buf, Reduce(Initial(), Navigate{Target: v}))
		assert.False(t, res.Faulted)
		assert.Equal(t, v, res.View)
		assert.Equal(t, "page:"+string(v), buf.String())
	}
}

func TestRenderCurrentUnknownFallsBackHome(t *testing.T) {
	r := newTestRouter()
	var buf bytes.Buffer
	res := r.RenderCurrent(context.Background(), &buf, State{Current: "BOGUS"})
	assert.Equal(t, Home, res.View)
	assert.Equal(t, "page:HOME", buf.String())
}

func TestRenderCurrentContainsFaults(t *testing.T) {
	r := newTestRouter()
	r.Handle(Stories, func(_ context.Context, w io.Writer, _ State) error {
		io.WriteString(w, "half a page")
		return errors.New("template exploded")
	})
	r.Handle(About, func(context.Context, io.Writer, State) error {
		var m map[string]int
		m["boom"]++
		return nil
	})

	for _, v := range []View{Stories, About} {
		var buf bytes.Buffer
		var res Result
		require.NotPanics(t, func() {
			res = r.RenderCurrent(context.Background(), &buf, State{Current: v})
		})
		assert.True(t, res.Faulted)
		assert.Contains(t, buf.String(), FaultMessage)
		assert.NotContains(t, buf.String(), "half a page")
	}
}

func TestRenderCurrentChrome(t *testing.T) {
	r := newTestRouter()
	var buf bytes.Buffer
	res := r.RenderCurrent(context.Background(), &buf, State{Current: Presentation})
	assert.False(t, res.Chrome)

	res = r.RenderCurrent(context.Background(), &buf, State{Current: Donate})
	assert.True(t, res.Chrome)
}

func TestRenderCurrentEmptyRouter(t *testing.T) {
	r := NewRouter(zerolog.Nop())
	var buf bytes.Buffer
	res := r.RenderCurrent(context.Background(), &buf, Initial())
	assert.True(t, res.Faulted)
	assert.Contains(t, buf.String(), FaultMessage)
}
