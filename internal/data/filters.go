package data

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/aoideee/bookshelf-api/internal/validator"
)

// BookFilters holds the optional list filters taken from the query string.
// Only one of them is applied: Name wins over Reading, which wins over Finished.
type BookFilters struct {
	Name     string
	Reading  string
	Finished string
}

// matcher returns the predicate selected by f. A nil predicate keeps every book.
func (f BookFilters) matcher() func(*Book) bool {
	switch {
	case f.Name != "":
		needle := cases.Fold().String(f.Name)
		return func(b *Book) bool {
			return strings.Contains(cases.Fold().String(b.Name), needle)
		}
	case f.Reading != "":
		return flagMatcher(f.Reading, func(b *Book) bool { return b.Reading })
	case f.Finished != "":
		return flagMatcher(f.Finished, func(b *Book) bool { return b.Finished })
	}
	return nil
}

// flagMatcher maps "1" to books where field is true and "0" to books where it
// is false. Any other value does not filter.
func flagMatcher(value string, field func(*Book) bool) func(*Book) bool {
	if !validator.In(value, "0", "1") {
		return nil
	}
	want := value == "1"
	return func(b *Book) bool { return field(b) == want }
}
