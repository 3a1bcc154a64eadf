package djkit

import (
	"fmt"
	"strings"
)

// Member is a single named enum value.
type Member[T comparable] struct {
	Name  string
	Value T
}

// Enum maps between outward member labels and internal values, so
// clients exchange words like "BEGINNER" while storage keeps the
// compact value. Declaration order is preserved for Labels.
//
//	level, _ := djkit.NewEnum("Level",
//		djkit.Member[int64]{Name: "BEGINNER", Value: 0},
//		djkit.Member[int64]{Name: "INTERMEDIATE", Value: 1},
//		djkit.Member[int64]{Name: "ADVANCED", Value: 2},
//	)
//	v, err := level.Receive("BEGINNER") // 0
//	s, err := level.Send(2)             // "ADVANCED"
type Enum[T comparable] struct {
	name    string
	members []Member[T]
	byName  map[string]T
}

// NewEnum creates an enum named name with the given members.
// Member names must be unique.
func NewEnum[T comparable](name string, members ...Member[T]) (*Enum[T], error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("enum %s has no members", name)
	}

	byName := make(map[string]T, len(members))
	for _, m := range members {
		if _, ok := byName[m.Name]; ok {
			return nil, fmt.Errorf("enum %s has duplicate member %q", name, m.Name)
		}
		byName[m.Name] = m.Value
	}

	return &Enum[T]{
		name:    name,
		members: members,
		byName:  byName,
	}, nil
}

// Name returns the enum's declared name.
func (e *Enum[T]) Name() string {
	return e.name
}

// Receive translates an inbound member name into its internal value.
func (e *Enum[T]) Receive(label string) (T, error) {
	if v, ok := e.byName[label]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q is not a member of %s, available members are [%s]",
		ErrUnknownMember, label, e.name, strings.Join(e.Labels(), ", "))
}

// Send translates an internal value into its outward label.
// String-valued members display their value, others their name.
func (e *Enum[T]) Send(value T) (string, error) {
	for _, m := range e.members {
		if m.Value == value {
			return e.display(m), nil
		}
	}
	return "", fmt.Errorf("%w: value %v has no corresponding member in %s", ErrUnknownMember, value, e.name)
}

// Labels returns the outward form of every member, in declaration order.
func (e *Enum[T]) Labels() []string {
	labels := make([]string, len(e.members))
	for i, m := range e.members {
		labels[i] = e.display(m)
	}
	return labels
}

// display picks the outward form of a member: the value itself when the
// enum is string-valued, the member name otherwise.
func (e *Enum[T]) display(m Member[T]) string {
	if s, ok := any(m.Value).(string); ok {
		return s
	}
	return m.Name
}
