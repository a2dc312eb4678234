package assessment

import (
	"strings"

	"golang.org/x/text/cases"
)

// AnswerSet is the canonical form of submitted and accepted answers. Values
// keep their literal text; blank values are dropped and duplicates removed.
type AnswerSet []string

func NewAnswerSet(values ...string) AnswerSet {
	set := make(AnswerSet, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return set
}

func (a AnswerSet) Empty() bool { return len(a) == 0 }

func (a AnswerSet) Contains(v string) bool {
	for _, x := range a {
		if x == v {
			return true
		}
	}
	return false
}

func (a AnswerSet) Strings() []string {
	out := make([]string, len(a))
	copy(out, a)
	return out
}

// normalize trims, collapses inner whitespace and case-folds free text.
func normalize(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}
