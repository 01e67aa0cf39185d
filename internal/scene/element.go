// Package scene models the visual elements of the playground as named
// class sets, mirroring how the renderer decides what to draw.
package scene

import "strings"

// Element is a named scene node carrying a set of style classes. Class
// order is insertion order and each class appears at most once.
type Element struct {
	name    string
	classes []string
}

// NewElement returns an element with the given name and initial classes.
func NewElement(name string, classes ...string) *Element {
	e := &Element{name: name}
	for _, c := range classes {
		e.Add(c)
	}
	return e
}

// Name returns the element's registry name. Safe on a nil element.
func (e *Element) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Has reports whether the element carries class. Safe on a nil element.
func (e *Element) Has(class string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Add puts class on the element if not already present.
func (e *Element) Add(class string) {
	if e == nil || class == "" || e.Has(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// Remove drops class from the element if present.
func (e *Element) Remove(class string) {
	if e == nil {
		return
	}
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// Toggle flips class membership and reports whether the class is present
// afterwards. When force is non-nil the class is put into exactly that
// state instead of flipped. A nil element is a no-op that reports false,
// so callers may toggle the result of a failed lookup without checking.
func (e *Element) Toggle(class string, force *bool) bool {
	if e == nil {
		return false
	}
	on := e.Has(class)
	want := !on
	if force != nil {
		want = *force
	}
	if want && !on {
		e.Add(class)
	} else if !want && on {
		e.Remove(class)
	}
	return want
}

// ClassString renders the element's classes as a space-joined list in
// insertion order, the way they appear in a rendered snapshot.
func (e *Element) ClassString() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.classes, " ")
}

// Classes returns a copy of the element's class list.
func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}
