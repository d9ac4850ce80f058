package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. Vertices are plain values, so a point's
// coordinates are its identity here: two equal points share a name.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
