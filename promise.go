// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package promise

// Promise is an opaque handle owning exactly one handler. It's the only
// type user code ever sees: whether it was built through NewPromise (a
// resolver runs against a fresh Deferred) or internally (wrapping an
// already-known handler, e.g. the result of Then, or a Resolve/Reject/
// Empty/All/Race combinator), both expose the exact same chaining
// surface below.
type Promise struct {
	rt      *Runtime
	handler handler
}

// wrap returns a new Promise, internally constructed, over h.
func (rt *Runtime) wrap(h handler) *Promise {
	return &Promise{rt: rt, handler: h}
}

// NewPromise creates a Promise whose resolver is invoked synchronously.
// resolver is passed resolve, reject, and notify callbacks bound to the
// new Promise's Deferred handler; any panic inside resolver is caught
// and turned into a rejection, exactly like a thrown exception would be.
func (rt *Runtime) NewPromise(resolver func(resolve func(any), reject func(any), notify func(any))) *Promise {
	if resolver == nil {
		panic(nilCallbackPanicMsg)
	}

	d := newDeferred(rt.scheduler)
	p := rt.wrap(d)

	func() {
		defer func() {
			if v := recover(); v != nil {
				d.reject(v)
			}
		}()
		resolver(d.resolve, d.reject, d.notify)
	}()

	return p
}

// Inspect returns a synchronous view of this promise's current state. It
// never blocks and never advances resolution — a promise that's still
// pending inspects as pending, even if its eventual settlement has
// already been decided but not yet drained through the scheduler.
func (p *Promise) Inspect() StateSnapshot {
	return p.handler.traverse().inspect()
}

// Then registers reactions for this promise's eventual fulfillment,
// rejection, and/or progress, and returns a new Promise for the result.
// Any of onFulfilled, onRejected, onProgress may be nil.
//
// When this promise fulfills with v: if onFulfilled is non-nil, the
// returned promise resolves with tryCatch(onFulfilled, v, receiver);
// otherwise v passes through unchanged.
//
// When this promise rejects with r: if onRejected is non-nil, the
// returned promise resolves (not rejects) with tryCatch(onRejected, r,
// receiver) — a handler that returns normally recovers the chain;
// otherwise the rejection propagates unchanged.
//
// Reactions never fire synchronously within this call, even if the
// promise is already settled (I2).
func (p *Promise) Then(onFulfilled, onRejected ReactionFunc, onProgress ProgressFunc) *Promise {
	from := p.handler
	receiver := receiverOf(from)

	to := newDeferred(p.rt.scheduler)
	from.when(reaction{
		resolve:     to.resolve,
		notify:      to.notify,
		receiver:    receiver,
		onFulfilled: onFulfilled,
		onRejected:  onRejected,
		onProgress:  onProgress,
	}, p.rt.scheduler)

	return p.rt.wrap(to)
}

// Catch is shorthand for Then(nil, onRejected, nil).
func (p *Promise) Catch(onRejected ReactionFunc) *Promise {
	return p.Then(nil, onRejected, nil)
}

// Otherwise is an alias for Catch.
func (p *Promise) Otherwise(onRejected ReactionFunc) *Promise {
	return p.Catch(onRejected)
}

// With returns a chainable promise whose subsequent reactions run with
// receiver bound, via a Following handler. This is a deliberate,
// documented break from strict A+ compliance (spec §9): ordinary chains
// never rebind the receiver on their own.
func (p *Promise) With(receiver any) *Promise {
	return p.rt.wrap(&followingHandler{handler: p.handler, receiver: receiver})
}

// WithThis is an alias for With.
func (p *Promise) WithThis(receiver any) *Promise {
	return p.With(receiver)
}
