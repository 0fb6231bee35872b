package threadlocal

import (
	"fmt"
	"runtime"
	"sync"
)

// gid returns the ID of the current Go routine. It is obtained by parsing the
// first line of the output from runtime.Stack which is not particularly fast
// but portable across platforms and Go releases
func gid() int64 {
	const prefixLen = 10 // Length of prefix "goroutine "
	var buf [64]byte

	l := runtime.Stack(buf[:64], false)
	n := int64(0)
	for i := prefixLen; i < l; i++ {
		d := buf[i]
		if d < 0x30 || d > 0x39 {
			break
		}
		n = n*10 + int64(d-0x30)
	}
	if n == 0 {
		panic(fmt.Errorf(`unable to retrieve id of current go routine`))
	}
	return n
}

var storeLock sync.RWMutex
var store = make(map[int64]map[string]interface{}, 7)

// Init initializes a go routine local storage for the current go routine
func Init() {
	g := gid()
	storeLock.Lock()
	store[g] = make(map[string]interface{})
	storeLock.Unlock()
}

// Cleanup deletes the local storage for the current go routine
func Cleanup() {
	g := gid()
	storeLock.Lock()
	delete(store, g)
	storeLock.Unlock()
}

// Initialized returns true if a local storage exists for the current go routine
func Initialized() bool {
	g := gid()
	storeLock.RLock()
	_, ok := store[g]
	storeLock.RUnlock()
	return ok
}

// Delete deletes a variable from the local storage of the current go routine
func Delete(key string) {
	g := gid()
	storeLock.RLock()
	ls, ok := store[g]
	storeLock.RUnlock()
	if ok {
		delete(ls, key)
	}
}

// Get returns a variable from the local storage of the current go routine
func Get(key string) (interface{}, bool) {
	g := gid()
	storeLock.RLock()
	ls, ok := store[g]
	storeLock.RUnlock()
	var found interface{}
	if ok {
		found, ok = ls[key]
	}
	return found, ok
}

// Go executes the given function in a go routine and ensures that the local
// storage is initialized before the function is called and deleted after
// the function returns or panics
func Go(f func()) {
	go func() {
		defer Cleanup()
		Init()
		f()
	}()
}

// Set adds or replaces a variable in the local storage of the current go
// routine. The storage must have been initialized with a call to Init
func Set(key string, value interface{}) {
	g := gid()
	storeLock.RLock()
	ls, ok := store[g]
	storeLock.RUnlock()
	if !ok {
		panic(`thread local not initialized for current go routine`)
	}
	ls[key] = value
}
