package content

import "strings"

const titleSeparator = "|"

// SplitTitle splits a stored hero title "line1|line2" into trimmed lines.
func SplitTitle(title string) (string, string) {
	first, second, _ := strings.Cut(title, titleSeparator)
	return strings.TrimSpace(first), strings.TrimSpace(second)
}

func JoinTitle(first, second string) string {
	return first + titleSeparator + second
}

// SetTitleLine rewrites line idx (0 or 1) keeping the other line from title.
func SetTitleLine(title string, idx int, value string) string {
	first, second := SplitTitle(title)
	if idx == 0 {
		first = value
	} else {
		second = value
	}
	return JoinTitle(first, second)
}
