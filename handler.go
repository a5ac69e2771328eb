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

// reaction opaquely carries everything a when call needs to schedule a
// reaction against a handler's eventual state: the resolve/notify
// callbacks of the downstream Deferred, the receiver the user callbacks
// should run with, and the (optional) user callbacks themselves.
//
// A ForwardingTask is just a handler plus a reaction, replayed once the
// handler is known to be settled.
type reaction struct {
	resolve  func(any)
	notify   func(any)
	receiver any

	onFulfilled ReactionFunc
	onRejected  ReactionFunc
	onProgress  ProgressFunc
}

// ReactionFunc is a user-supplied onFulfilled/onRejected callback. It
// receives the bound receiver (nil when unbound) and the fulfillment
// value or rejection reason, and returns the value the downstream
// promise should resolve with.
//
// A ReactionFunc may panic to signal a thrown exception; tryCatch turns
// that panic into a Rejected handler, exactly like a JS throw turning
// into a rejection.
type ReactionFunc func(receiver any, x any) any

// ProgressFunc is a user-supplied onProgress callback, given the same
// receiver/value treatment as ReactionFunc, but never turned into a
// rejection when it panics (see ProgressTask).
type ProgressFunc func(receiver any, x any) any

// handler is the polymorphic state a Promise holds: Fulfilled, Rejected,
// Deferred, Following, Empty, or (structurally) Thenable. It's the
// capability set from spec §3/§4.2.
type handler interface {
	// when schedules r against this handler's eventual state. It must
	// never invoke any callback synchronously; only sched.Enqueue may be
	// called inline.
	when(r reaction, sched Scheduler)

	// traverse collapses chains of Following/resolved-Deferred to their
	// ultimate settled or still-pending tail.
	traverse() handler

	// inspect returns a synchronous snapshot of the current state.
	inspect() StateSnapshot
}

// receiverHolder is implemented by handler variants that can carry a
// bound receiver forward to the next reaction: Deferred and Following.
// Variants that can't (Fulfilled, Rejected, Empty, Thenable-as-Deferred
// notwithstanding) simply aren't asked, via receiverOf's default of nil.
type receiverHolder interface {
	receiverOf() any
}

func receiverOf(h handler) any {
	if rh, ok := h.(receiverHolder); ok {
		return rh.receiverOf()
	}
	return nil
}

// tryCatch invokes f with receiver bound and x as its sole argument. If f
// panics, the panic is recovered and turned into a handler that rejects
// with the recovered value, per spec §4.3's tryCatch.
func tryCatch(f ReactionFunc, receiver any, x any) (result any) {
	defer func() {
		if v := recover(); v != nil {
			result = rejectedHandler{reason: v}
		}
	}()
	return f(receiver, x)
}

// fulfilledHandler is a settled handler holding a fulfillment value.
type fulfilledHandler struct {
	value any
}

func (h fulfilledHandler) when(r reaction, sched Scheduler) {
	sched.Enqueue(&FulfillTask{
		resolve:     r.resolve,
		receiver:    r.receiver,
		onFulfilled: r.onFulfilled,
		value:       h.value,
	})
}

func (h fulfilledHandler) traverse() handler { return h }

func (h fulfilledHandler) inspect() StateSnapshot {
	return StateSnapshot{State: Fulfilled, Value: h.value}
}

// rejectedHandler is a settled handler holding a rejection reason.
type rejectedHandler struct {
	reason any
}

func (h rejectedHandler) when(r reaction, sched Scheduler) {
	sched.Enqueue(&RejectTask{
		resolve:    r.resolve,
		receiver:   r.receiver,
		onRejected: r.onRejected,
		reason:     h.reason,
	})
}

func (h rejectedHandler) traverse() handler { return h }

func (h rejectedHandler) inspect() StateSnapshot {
	return StateSnapshot{State: Rejected, Reason: h.reason}
}

// emptyHandler never settles. It backs Runtime.Empty(): a promise held
// open forever, used as a "pending forever" placeholder, e.g. in Race's
// documented empty-input behavior.
type emptyHandler struct{}

func (emptyHandler) when(reaction, Scheduler) {}

func (emptyHandler) traverse() handler { return emptyHandler{} }

func (emptyHandler) inspect() StateSnapshot { return StateSnapshot{State: Pending} }
