package dictionary

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser keeps state between calls and must not be shared across
// goroutines, so lookups borrow one from the pool.
var casers = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// lower maps w to lowercase using Unicode rules. Input that is already
// lowercase ASCII is returned as is.
func lower(w string) string {
	if isLowerASCII(w) {
		return w
	}
	c := casers.Get().(*cases.Caser)
	defer casers.Put(c)
	return c.String(w)
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
