package types

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lingproj/metatype/meta"
	"github.com/lyraproj/issue/issue"
)

// ctor is the one implementation of meta.Constructor. A restricted constructor
// can only be called while lifted. Factories lift under the liftLock, so at most
// one creator runs lifted at any point in time and the restriction is always
// restored before the factory returns
type ctor struct {
	receiver   meta.Type
	parameters []meta.Type
	restricted bool
	creator    meta.Creator
	liftLock   sync.Mutex
	lifted     int32
}

func newCtor(receiver meta.Type, parameters []meta.Type, restricted bool, creator meta.Creator) *ctor {
	return &ctor{receiver: receiver, parameters: parameters, restricted: restricted, creator: creator}
}

func (ct *ctor) Receiver() meta.Type {
	return ct.receiver
}

func (ct *ctor) Parameters() []meta.Type {
	return ct.parameters
}

func (ct *ctor) Restricted() bool {
	return ct.restricted
}

func (ct *ctor) Equals(other interface{}, g meta.Guard) bool {
	oc, ok := other.(*ctor)
	return ok && ct == oc
}

func (ct *ctor) Call(args ...interface{}) interface{} {
	if ct.restricted && atomic.LoadInt32(&ct.lifted) == 0 {
		panic(meta.Error(meta.IllegalAccess, issue.H{`type`: ct.receiver.Name(), `signature`: signatureString(ct.parameters)}))
	}
	return ct.call(args)
}

func (ct *ctor) liftAndCall(args []interface{}) interface{} {
	if !ct.restricted {
		return ct.call(args)
	}
	ct.liftLock.Lock()
	atomic.StoreInt32(&ct.lifted, 1)
	defer func() {
		atomic.StoreInt32(&ct.lifted, 0)
		ct.liftLock.Unlock()
	}()
	return ct.call(args)
}

func (ct *ctor) call(args []interface{}) interface{} {
	if len(args) != len(ct.parameters) {
		panic(meta.Error(meta.ParameterArityError, issue.H{
			`signature`: signatureString(ct.parameters), `expected`: len(ct.parameters), `actual`: len(args)}))
	}
	v, err := ct.create(args)
	if err != nil {
		panic(meta.Error(meta.InstantiationError, issue.H{`type`: ct.receiver.Name(), `detail`: err.Error()}))
	}
	return v
}

// create converts a creator panic into an error return so that every creator
// fault, a raised Reported included, surfaces through the same instantiation
// error with the original message as its detail
func (ct *ctor) create(args []interface{}) (v interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(error); ok {
				err = re
			} else {
				err = fmt.Errorf(`%v`, r)
			}
		}
	}()
	return ct.creator(args)
}
