// Package dbg holds debug-only helpers for the sweep engine: readable object
// names and PNG dumps of the vertex ring and active-edge list. Nothing here
// is on the hot path; every call site is gated by Config.Verbose.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// memo holds the labels Name hands out, so verbose sweep traces show short,
// readable labels instead of raw addresses. It leaks memory by design (the map
// only grows while a caller is actually asking for names), which is fine for
// a debug-only aid.
var memo = map[interface{}]string{}

func init() {
	// Names are generated in order of demand, so make them non-deterministic to
	// remind readers that the same label doesn't mean the same thing between
	// runs.
	petname.NonDeterministicMode()
}

// Name returns a readable label for obj, memoized for the lifetime of the
// process. A nil pointer is rendered as "Ø".
func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
