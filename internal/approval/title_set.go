package approval

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	DefaultManagerTitles     = []string{"Manager", "Director", "Yönetici", "Direktör"}
	DefaultHRDepartmentNames = []string{"Human Resources", "İnsan Kaynakları"}
)

// NameSet is an enumerated set of labels matched case-insensitively. Both the
// Unicode fold and the Turkish lower-case form are kept so that dotted and
// dotless I variants resolve to the same entry.
type NameSet struct {
	keys  map[string]struct{}
	names []string
}

func NewNameSet(names ...string) NameSet {
	s := NameSet{keys: make(map[string]struct{}, len(names)*2)}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		s.names = append(s.names, n)
		for _, k := range nameKeys(n) {
			s.keys[k] = struct{}{}
		}
	}
	return s
}

func (s NameSet) Contains(name string) bool {
	if len(s.keys) == 0 {
		return false
	}
	for _, k := range nameKeys(strings.TrimSpace(name)) {
		if _, ok := s.keys[k]; ok {
			return true
		}
	}
	return false
}

func (s NameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func nameKeys(n string) []string {
	if n == "" {
		return nil
	}
	// Casers are stateful and not safe for concurrent use; build per call.
	return []string{
		cases.Fold().String(n),
		cases.Lower(language.Turkish).String(n),
	}
}
