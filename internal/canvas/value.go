package canvas

// Value is a minimal observable cell: Set notifies subscribers when the value
// actually changes. Window uses it to propagate padding changes into layout.
type Value[T comparable] struct {
	v    T
	subs []func(T)
}

// NewValue returns an observable holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	return o.v
}

// Set stores v and notifies subscribers if it differs from the current value.
func (o *Value[T]) Set(v T) {
	if v == o.v {
		return
	}
	o.v = v
	for _, fn := range o.subs {
		fn(v)
	}
}

// OnChange registers fn to run after every effective Set.
func (o *Value[T]) OnChange(fn func(T)) {
	o.subs = append(o.subs, fn)
}
