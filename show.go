package maybe

import "github.com/authcorp/libs/go/maybe/show"

// Show renders m as "Nothing" or "Just (x)", with x in its own display form.
func (m Maybe[T]) Show() string {
	if !m.just {
		return "Nothing"
	}
	return "Just (" + show.Show(m.value) + ")"
}

// String implements fmt.Stringer.
func (m Maybe[T]) String() string {
	return m.Show()
}
