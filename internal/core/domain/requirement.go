package domain

import "strings"

// CommentMarker excludes every requirements line that contains it, wherever it appears.
const CommentMarker = "#"

// Requirement is one raw line of a requirements file, e.g. "requests>=2.0\n".
// It is kept verbatim, including its trailing newline, and never validated.
type Requirement string

// NewRequirement returns the requirement for line and whether the line qualifies.
// A line qualifies when it does not contain the comment marker anywhere.
func NewRequirement(line string) (Requirement, bool) {
	if strings.Contains(line, CommentMarker) {
		return "", false
	}
	return Requirement(line), true
}

// String returns the requirement exactly as read.
func (r Requirement) String() string {
	return string(r)
}

// Spec returns the requirement without its line terminator.
func (r Requirement) Spec() string {
	return strings.TrimRight(string(r), "\r\n")
}

// Requirements is an ordered sequence of requirements in file order.
// Entries are not deduplicated, trimmed or validated.
type Requirements []Requirement

// Strings returns the requirements as raw strings.
func (rs Requirements) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// Specs returns the requirements without line terminators.
func (rs Requirements) Specs() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Spec()
	}
	return out
}
