package naming

import (
	"regexp"
	"strings"
)

// reEnumerated matches "<base>[ ](<digits>)[.<ext>]" anchored at both ends.
// Base is non-greedy and non-empty, so only the final parenthesized number
// is taken as the enumeration suffix. The character classes mirror Unicode
// whitespace, word characters and decimal digits.
var reEnumerated = regexp.MustCompile(
	`^(?P<base>.+?)[\s\v\x{85}\p{Z}]*\(\p{Nd}+\)(?P<ext>\.[\p{L}\p{M}\p{Nd}\p{Nl}\p{Pc}\x{200C}\x{200D}]+)?$`)

var (
	baseIndex = reEnumerated.SubexpIndex("base")
	extIndex  = reEnumerated.SubexpIndex("ext")
)

// Normalize maps a filename (without any path separators) to its canonical
// identity by stripping the enumeration suffix, e.g. "report (2).pdf" becomes
// "report.pdf" and "report (12)" becomes "report". Filenames without such a
// suffix, or with nothing before it, are returned unchanged.
func Normalize(filename string) string {
	matches := reEnumerated.FindStringSubmatch(filename)
	if matches == nil {
		return filename
	}

	return matches[baseIndex] + matches[extIndex]
}

// IsEnumerated returns true if the filename carries an enumeration suffix.
func IsEnumerated(filename string) bool {
	return Normalize(filename) != filename
}

// IsHidden returns true if the given base name of a filesystem element starts
// with a dot. The special entries "." and ".." are not considered hidden.
func IsHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}

	return strings.HasPrefix(name, ".")
}
