// Package naming derives canonical identities from filenames.
//
// Many file managers avoid name collisions by appending an enumeration suffix
// to a filename, so that a second "report.pdf" becomes "report (2).pdf". The
// package treats such a suffix as evidence of duplication: [Normalize] strips
// it and returns the name the file had before enumeration, which is used as
// the grouping key for duplicate detection.
//
// [IsHidden] decides whether a filesystem element is excluded from walking.
package naming
