package encoding

// Mapping wraps an Encoding known (by construction) to consist only of
// flip-graph moves with source != target.
type Mapping struct {
	*Encoding
}

// AsMapping promotes e to a Mapping if e.Kind() == KindMapping.
func (e *Encoding) AsMapping() (*Mapping, error) {
	if e.Kind() != KindMapping {
		return nil, ErrNotMapping
	}

	return &Mapping{Encoding: e}, nil
}

// MappingClass wraps an Encoding known to consist only of flip-graph
// moves with source == target: a self-map of the triangulation, the
// only kind that supports exponentiation and order.
type MappingClass struct {
	*Encoding
}

// AsMappingClass promotes e to a MappingClass if e.Kind() ==
// KindMappingClass.
func (e *Encoding) AsMappingClass() (*MappingClass, error) {
	if e.Kind() != KindMappingClass {
		return nil, ErrNotMappingClass
	}

	return &MappingClass{Encoding: e}, nil
}

// Pow returns h composed with itself k times (k >= 1) or h.Inverse()
// composed k times (k <= -1); Pow(0) returns the identity
// MappingClass on h's triangulation.
func (h *MappingClass) Pow(k int) (*MappingClass, error) {
	if k == 0 {
		return &MappingClass{Encoding: Identity(h.Source())}, nil
	}
	base := h.Encoding
	if k < 0 {
		base = h.Inverse()
		k = -k
	}
	cur := base
	for i := 1; i < k; i++ {
		next, err := cur.Compose(base)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return &MappingClass{Encoding: cur}, nil
}

// Order searches for the least k >= 1 with h.Pow(k) == identity, up to
// bound attempts (e.g. h.Order() == 6 on S_{1,1}). It returns 0 if no
// such k is found within bound, signalling h is (as far as this
// search can tell) not periodic.
func (h *MappingClass) Order(bound int) (int, error) {
	identity := Identity(h.Source())
	cur := h.Encoding
	for k := 1; k <= bound; k++ {
		if cur.Equal(identity) {
			return k, nil
		}
		next, err := cur.Compose(h.Encoding)
		if err != nil {
			return 0, err
		}
		cur = next
	}

	return 0, nil
}

// IsPeriodic reports whether Order(bound) finds a finite order.
func (h *MappingClass) IsPeriodic(bound int) (bool, error) {
	order, err := h.Order(bound)
	if err != nil {
		return false, err
	}

	return order > 0, nil
}
