package dictionary

import (
	_ "embed"
	"fmt"
	"sync"
)

// Words were picked to be short, common, and hard to misspell.
//
//go:embed words/en.txt
var englishWords []byte

var english = sync.OnceValue(func() *Dictionary {
	d, err := Parse(englishWords)
	if err != nil {
		// the asset is compiled in; a bad one is a build error
		panic(fmt.Sprintf("dictionary: embedded english word list: %v", err))
	}
	return d
})

// English returns the built-in English dictionary. It is parsed on first use
// and shared afterwards.
func English() *Dictionary { return english() }
