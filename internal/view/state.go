package view

// State is the navigation state owned by one browser session.
type State struct {
	Current  View
	Category string // selected resource category for ResourceCategory
	Slide    int    // presentation slide index
}

// Initial is the state of a freshly launched session.
func Initial() State {
	return State{Current: Home}
}

// Action is a navigation request applied by Reduce.
type Action interface {
	apply(State) State
}

// Navigate replaces the current view. Any View value is accepted; values
// without a renderer are handled at render time.
type Navigate struct {
	Target   View
	Category string
}

func (a Navigate) apply(s State) State {
	next := State{Current: a.Target, Category: s.Category, Slide: 0}
	if a.Target == ResourceCategory {
		next.Category = a.Category
	}
	if a.Target == Presentation && s.Current == Presentation {
		next.Slide = s.Slide
	}
	return next
}

// Launch resets the state and applies the optional "view" query parameter.
// Unrecognized values leave the session on Home.
type Launch struct {
	Param string
}

func (a Launch) apply(State) State {
	s := Initial()
	if v, ok := Parse(a.Param); ok {
		s.Current = v
	}
	return s
}

// NextSlide advances the presentation by one slide. Count is the size of
// the deck; the index never passes the last slide.
type NextSlide struct {
	Count int
}

func (a NextSlide) apply(s State) State { return stepSlide(s, 1, a.Count) }

// PrevSlide moves the presentation back one slide, stopping at the first.
type PrevSlide struct {
	Count int
}

func (a PrevSlide) apply(s State) State { return stepSlide(s, -1, a.Count) }

func stepSlide(s State, delta, count int) State {
	if s.Current != Presentation || count <= 0 {
		return s
	}
	s.Slide = ClampSlide(s.Slide+delta, count)
	return s
}

// ClampSlide bounds i to [0, count-1].
func ClampSlide(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}

// Reduce returns the state that results from applying a to s. It has no
// side effects.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
