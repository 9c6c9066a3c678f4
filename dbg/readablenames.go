package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts values into random readable names, so that a polygon with
// forty vertices can show up in a log line as "BraveOtter". It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Values are keyed by their String form, so equal
// values share a name.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj fmt.Stringer) string {
	if obj == nil {
		return "Ø"
	}

	key := obj.String()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
