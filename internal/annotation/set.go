package annotation

// Set is the authoritative ordered collection of committed shapes. Insertion
// order is creation order and is preserved across removals. The editor is the
// only mutator.
type Set struct {
	shapes []*Shape
	byID   map[string]*Shape
}

// NewSet creates an empty annotation set.
func NewSet() *Set {
	return &Set{byID: make(map[string]*Shape)}
}

// Len returns the number of shapes in the set.
func (s *Set) Len() int {
	return len(s.shapes)
}

// Shapes returns the shapes in insertion order. The slice is shared; callers
// must not modify it.
func (s *Set) Shapes() []*Shape {
	return s.shapes
}

// Get returns the shape with the given id, or nil if absent.
func (s *Set) Get(id string) *Shape {
	return s.byID[id]
}

// Contains reports whether a shape with the given id is in the set.
func (s *Set) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Append adds a shape to the end of the set. A shape whose id is already
// present is ignored; ids are unique for the lifetime of the set.
func (s *Set) Append(shape *Shape) {
	if shape == nil || s.Contains(shape.ID) {
		return
	}
	s.shapes = append(s.shapes, shape)
	s.byID[shape.ID] = shape
}

// Remove deletes the shape with the given id. Removing an absent id is a
// no-op. Returns true if a shape was removed.
func (s *Set) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, sh := range s.shapes {
		if sh.ID == id {
			s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
			break
		}
	}
	return true
}

// HitTest returns the topmost shape containing (x, y), or nil. Later shapes
// draw on top of earlier ones, so the scan runs back to front.
func (s *Set) HitTest(x, y float64) *Shape {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].HitTest(x, y) {
			return s.shapes[i]
		}
	}
	return nil
}
