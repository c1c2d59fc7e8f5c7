package policy

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind identifies what a line looks like to the insertion policy.
type Kind int

const (
	Plain Kind = iota
	ListBullet
	ListTask
	CodeFence
)

func (k Kind) String() string {
	switch k {
	case ListBullet:
		return "bullet"
	case ListTask:
		return "task"
	case CodeFence:
		return "fence"
	default:
		return "plain"
	}
}

// Classification is the result of classifying a single line. Offset is only
// meaningful for ListBullet and holds the rune index just past the bullet
// marker and its trailing whitespace.
type Classification struct {
	Kind   Kind
	Offset int
}

var (
	// Unordered (-, *, +) or ordered (1., 1)) markers, optionally indented,
	// followed by at least one space or tab.
	bulletPattern = regexp.MustCompile(`^[ \t]*(?:[-*+]|[0-9]+[.)])[ \t]+`)
	// A bullet whose marker is immediately followed by a checkbox token.
	taskPattern = regexp.MustCompile(`^[ \t]*(?:[-*+]|[0-9]+[.)])[ \t]+\[[^\[\]]*\][ \t]`)
)

// Classify determines how a line participates in timestamp insertion.
// Exactly one kind applies; tasks win over bullets, and fence boundaries win
// over bullets so that a list line closing a code block is still treated as
// a fence.
func Classify(line string) Classification {
	if taskPattern.MatchString(line) {
		return Classification{Kind: ListTask}
	}
	if isFenceBoundary(line) {
		return Classification{Kind: CodeFence}
	}
	if m := bulletPattern.FindString(line); m != "" {
		return Classification{Kind: ListBullet, Offset: utf8.RuneCountInString(m)}
	}
	return Classification{Kind: Plain}
}

// isFenceBoundary reports whether the line opens or closes a fenced code
// block: it starts with a backtick or ends with a triple-backtick run.
func isFenceBoundary(line string) bool {
	return strings.HasPrefix(line, "`") || strings.HasSuffix(line, "```")
}
