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

// classify is the resolution algorithm from spec §4.1: given an
// arbitrary value x, and the Deferred, self, that's attempting to
// resolve with it (nil when there's no "attempting Deferred", e.g. for
// the Resolve/All/Race combinators), it returns the handler that represents
// x's promise state.
//
// Rules, in order:
//  1. x is this module's own *Promise (a trusted promise): if its
//     handler traverses back to self, that's a resolution cycle (I4),
//     rejected with ErrCyclicResolution; otherwise the trusted promise's
//     handler is returned directly, shared rather than copied (I3).
//  2. x implements Thenable (a foreign, possibly misbehaving, thenable):
//     a fresh assimilating handler is returned, which will invoke x's
//     Then in a later task (spec §4.1's "fresh Thenable handler").
//  3. Otherwise — including every primitive, since a primitive can be
//     neither of the above — x is simply fulfilled as-is. This collapses
//     spec's separate "is x a primitive" rule into the same fallthrough
//     as "object with no callable then", which is the only other rule
//     that also returns Fulfilled(x); the two rules are unreachable from
//     each other, so merging them changes nothing observable.
func classify(x any, self *deferredHandler, sched Scheduler) handler {
	if pr, ok := x.(*Promise); ok {
		target := pr.handler
		if self != nil {
			if cur, ok := target.traverse().(*deferredHandler); ok && cur == self {
				return rejectedHandler{reason: ErrCyclicResolution}
			}
		}
		return target
	}

	if th, ok := x.(Thenable); ok {
		return newThenableHandler(th, sched)
	}

	return fulfilledHandler{value: x}
}
