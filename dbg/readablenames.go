package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. Polygons
// read from a stream have no name of their own, so the CLI labels each
// one lazily with a generated two-word name. Names are memoized per
// value but nondeterministic between runs, as a reminder that the same
// name doesn't refer to the same thing across invocations.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
