package guide

// A Mapper computes the style of a single tick from the tick's label
// text, its 0-based index and the total number of ticks. Returning nil
// suppresses the visual for that tick.
type Mapper[T any] func(text string, index, total int) *T

type stylingKind int

const (
	none stylingKind = iota
	fixed
	mapped
)

// A Styling determines the per-tick style of one visual element (tick line,
// label or grid line). It is either None, a Fixed style shared by all
// ticks or a Mapper evaluated per tick. The zero value is None.
type Styling[T any] struct {
	kind   stylingKind
	style  *T
	mapper Mapper[T]
}

// None returns a Styling which never yields a style.
func None[T any]() Styling[T] { return Styling[T]{} }

// Fixed returns a Styling handing out style to every tick. A nil style is
// the same as None.
func Fixed[T any](style *T) Styling[T] {
	if style == nil {
		return Styling[T]{}
	}
	return Styling[T]{kind: fixed, style: style}
}

// Mapped returns a Styling which calls m for every tick. A nil m is the same
// as None.
func Mapped[T any](m Mapper[T]) Styling[T] {
	if m == nil {
		return Styling[T]{}
	}
	return Styling[T]{kind: mapped, mapper: m}
}

// IsNone reports whether s never yields a style.
func (s Styling[T]) IsNone() bool { return s.kind == none }

// IsFixed reports whether s hands out one fixed style.
func (s Styling[T]) IsFixed() bool { return s.kind == fixed }

// IsMapped reports whether s calls a mapper per tick.
func (s Styling[T]) IsMapped() bool { return s.kind == mapped }

// Resolve returns the style of the tick with the given text and index
// among total ticks.
func (s Styling[T]) Resolve(text string, index, total int) *T {
	switch s.kind {
	case fixed:
		return s.style
	case mapped:
		return s.mapper(text, index, total)
	}
	return nil
}
