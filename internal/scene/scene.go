package scene

// Well-known element names registered by New. The TUI and the snapshot
// renderer address elements through these.
const (
	ElementStage     = "stage"
	ElementCard      = "card"
	ElementIndicator = "indicator"
	ElementDialog    = "dialog"
)

// Well-known style classes. These are the contract between the state
// machines that set them and the renderers that read them.
const (
	ClassRun     = "run"
	ClassFlipped = "is-flipped"
	ClassOn      = "on"
	ClassOpen    = "open"
	ClassClosing = "closing"
)

// Scene is a registry of named elements. Lookups for unknown names return
// nil, and every Element method tolerates a nil receiver, so a missing
// element degrades to a silent no-op rather than a panic.
type Scene struct {
	elements map[string]*Element
	order    []string
}

// New returns a scene pre-populated with the playground's elements.
func New() *Scene {
	s := &Scene{elements: make(map[string]*Element)}
	s.Register(NewElement(ElementStage))
	s.Register(NewElement(ElementCard))
	s.Register(NewElement(ElementIndicator))
	s.Register(NewElement(ElementDialog))
	return s
}

// Register adds an element to the scene, replacing any element already
// registered under the same name.
func (s *Scene) Register(e *Element) {
	if e == nil || e.Name() == "" {
		return
	}
	if _, exists := s.elements[e.Name()]; !exists {
		s.order = append(s.order, e.Name())
	}
	s.elements[e.Name()] = e
}

// Lookup returns the element registered under name, or nil if there is
// none.
func (s *Scene) Lookup(name string) *Element {
	return s.elements[name]
}

// Names returns the registered element names in registration order.
func (s *Scene) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
