package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It leaks memory
// but generates the names lazily, so it's not a problem unless you're actually
// using it. This is helpful for telling triangles apart in debug logs, where
// "<4 17 9>" and "<4 9 17>" are easy to confuse.

var (
	memoLock sync.Mutex
	memo     map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable name for obj within this process. obj must be usable
// as a map key. Nil pointers are "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "Ø"
		}
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
