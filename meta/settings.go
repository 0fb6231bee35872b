package meta

import (
	"reflect"
	"sync"

	"github.com/lyraproj/issue/issue"
)

type setting struct {
	name         string
	value        interface{}
	defaultValue interface{}
}

func (s *setting) reset() {
	s.value = s.defaultValue
}

func (s *setting) set(value interface{}) {
	if s.defaultValue != nil && value != nil {
		dt := reflect.TypeOf(s.defaultValue)
		nt := reflect.TypeOf(value)
		if dt != nt {
			panic(Error(BadSetting, issue.H{`name`: s.name, `old_type`: dt.String(), `new_type`: nt.String()}))
		}
	}
	s.value = value
}

var settingsLock sync.RWMutex
var settings = make(map[string]*setting, 32)

// DefineSetting defines a named setting with the given default value. Defining a
// setting that already exists resets it to the new default
func DefineSetting(name string, defaultValue interface{}) {
	settingsLock.Lock()
	settings[name] = &setting{name, defaultValue, defaultValue}
	settingsLock.Unlock()
}

// Get returns the value of the named setting, or the value produced by the given
// function when the setting has no value. Get raises META_UNKNOWN_SETTING for
// settings that have not been defined
func Get(name string, defaultProducer func() interface{}) interface{} {
	settingsLock.RLock()
	s, ok := settings[name]
	var v interface{}
	if ok {
		v = s.value
	}
	settingsLock.RUnlock()

	if !ok {
		panic(Error(UnknownSetting, issue.H{`name`: name}))
	}
	if v == nil && defaultProducer != nil {
		v = defaultProducer()
	}
	return v
}

// Set gives the named setting a new value. The value must be of the same Go type as
// the default value of the setting
func Set(name string, value interface{}) {
	settingsLock.Lock()
	defer settingsLock.Unlock()
	s, ok := settings[name]
	if !ok {
		panic(Error(UnknownSetting, issue.H{`name`: name}))
	}
	s.set(value)
}

// ResetSettings restores all settings to their default values
func ResetSettings() {
	settingsLock.Lock()
	for _, s := range settings {
		s.reset()
	}
	settingsLock.Unlock()
}
