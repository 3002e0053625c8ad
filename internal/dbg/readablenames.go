package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts triangles (or any other comparable key) into random
// readable names. It leaks memory for every key it has ever seen, but names are
// generated lazily, so it costs nothing unless debug strings are actually
// printed. Telling "BraveOtter" from "QuietHeron" in a log is a lot easier
// than telling triangle 4182 from 4128.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the names are handed out in order of demand, we make them
	// nondeterministic to remind the reader that the same name doesn't refer to
	// the same triangle between runs.
	petname.NonDeterministicMode()
}

// Keys reporting IsNone() render as the empty set symbol.
type noneReporter interface {
	IsNone() bool
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if n, ok := key.(noneReporter); ok && n.IsNone() {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Forget every name handed out so far.
func Reset() {
	memo = make(map[interface{}]string)
}
