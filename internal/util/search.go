package util

import (
	"regexp"
	"strings"
)

// SearchQuery is a parsed goal filter such as "cat:health pace:behind run".
type SearchQuery struct {
	Categories []string
	KRs        []string
	Pace       []string
	Text       []string
}

var (
	categoryRegex = regexp.MustCompile(`(?i)\bcat:(\w+)`)
	krRegex       = regexp.MustCompile(`(?i)\bkr:(\w+)`)
	paceRegex     = regexp.MustCompile(`(?i)\bpace:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
// Values are lower-cased; free text keeps its case for display.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		values := make([]string, 0, len(matches))
		for _, match := range matches {
			values = append(values, strings.ToLower(match[1]))
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Categories = extract(categoryRegex)
	sq.KRs = extract(krRegex)
	sq.Pace = extract(paceRegex)
	sq.Text = strings.Fields(query)

	return sq
}

// Empty reports whether the query filters nothing.
func (q SearchQuery) Empty() bool {
	return len(q.Categories) == 0 && len(q.KRs) == 0 && len(q.Pace) == 0 && len(q.Text) == 0
}

// MatchText reports whether every free-text word occurs in haystack,
// ignoring case.
func (q SearchQuery) MatchText(haystack string) bool {
	lower := strings.ToLower(haystack)
	for _, word := range q.Text {
		if !strings.Contains(lower, strings.ToLower(word)) {
			return false
		}
	}
	return true
}

// AnyOf reports whether value is in set (case-insensitive). An empty set
// matches everything.
func AnyOf(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}
