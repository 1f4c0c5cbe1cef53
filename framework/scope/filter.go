package scope

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/resultassert/resultassert/framework/helpers"
)

// Filter determines whether a check should run.
type Filter interface {
	Match(id ID) bool
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(ID) bool

func (f FilterFunc) Match(id ID) bool { return f(id) }

// RegexFilters selects checks by matching their names against regular expressions, the way the
// -run and -skip options of "go test" do.
type RegexFilters struct {
	MustMatch    IDPatternList
	MustNotMatch IDPatternList
}

func (r RegexFilters) Match(id ID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(id, true)) &&
		!r.MustNotMatch.AnyMatch(id, false)
}

// IsDefined returns true if there are any patterns.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// IDPattern is a list of regular expressions that are matched against the components of an ID.
type IDPattern []*regexp.Regexp

// Match tests whether the pattern matches an ID. If includeParents is true, an ID that is
// shorter than the pattern matches if the pattern could match one of its children.
func (p IDPattern) Match(id ID, includeParents bool) bool {
	n := len(p)
	if n > len(id) {
		if !includeParents {
			return false
		}
		n = len(id)
	}
	for i := 0; i < n; i++ {
		if !p[i].MatchString(id[i]) {
			return false
		}
	}
	return true
}

func (p IDPattern) String() string {
	ss := make([]string, 0, len(p))
	for _, c := range p {
		ss = append(ss, c.String())
	}
	return strings.Join(ss, "/")
}

// ParseIDPattern parses a slash-delimited list of regular expressions.
func ParseIDPattern(s string) (IDPattern, error) {
	parts := strings.Split(s, "/")
	ret := make(IDPattern, 0, len(parts))
	for _, part := range parts {
		rx, err := regexp.Compile(part)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
		ret = append(ret, rx)
	}
	return ret, nil
}

// IDPatternList is a list of patterns that implements flag.Value.
type IDPatternList []IDPattern

func (l IDPatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

func (l *IDPatternList) Set(value string) error {
	p, err := ParseIDPattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func (l IDPatternList) IsDefined() bool {
	return len(l) != 0
}

func (l IDPatternList) AnyMatch(id ID, includeParents bool) bool {
	for _, p := range l {
		if p.Match(id, includeParents) {
			return true
		}
	}
	return false
}

// PrintFilterDescription describes the filters, if any, for the start of a run.
func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	helpers.MustFprintln(w, "Some checks will be skipped based on the filter criteria for this run:")
	if filters.MustMatch.IsDefined() {
		helpers.MustFprintf(w, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		helpers.MustFprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
	}
	helpers.MustFprintln(w)
}
