package merger

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/facette/natsort"
)

// Less is a caller-supplied total order over file paths, used to decide the
// concatenation order. It must be a pure function so the resulting sort stays
// deterministic.
type Less func(a, b string) bool

// ByNumericSuffix orders files by the integer after the last underscore of
// the base name, so segment files produced by the splitter concatenate in
// index order: a_1.mp4, a_2.mp4, a_10.mp4.
//
// Files without a numeric suffix sort after numbered ones and keep their
// listing order among themselves.
func ByNumericSuffix() Less {
	return func(a, b string) bool {
		na, aok := numericSuffix(a)
		nb, bok := numericSuffix(b)

		if aok && bok {
			return na < nb
		}
		// Numbered files come first; ties are left to the stable sort.
		return aok && !bok
	}
}

// Natural orders files in natural (human) order, where embedded numbers
// compare numerically wherever they appear in the name.
func Natural() Less {
	return natsort.Compare
}

// Lexicographic orders files by plain string comparison.
func Lexicographic() Less {
	return func(a, b string) bool { return a < b }
}

// OrderByName resolves a configured ordering name ("numeric", "natural",
// "lex") to its Less function. The second return value is false for unknown
// names.
func OrderByName(name string) (Less, bool) {
	switch name {
	case "numeric":
		return ByNumericSuffix(), true
	case "natural":
		return Natural(), true
	case "lex":
		return Lexicographic(), true
	}
	return nil, false
}

func numericSuffix(path string) (int, bool) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	idx := strings.LastIndexByte(name, '_')
	if idx < 0 || idx == len(name)-1 {
		return 0, false
	}

	n, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
