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

// Thenable is any value this module doesn't own but that knows how to
// participate in resolution, by calling back one of resolve, reject, or
// notify exactly as a trusted promise's resolver would.
//
// It's the nearest static equivalent, in a statically typed language, of
// the dynamically-typed "has a callable then field" test spec §4.1
// performs on an arbitrary object: Go can't enumerate an arbitrary
// value's fields looking for a callable one without reflect, and a
// reflect-based search has no real analogue for a function-typed struct
// field, so resolution instead recognizes a small, explicit interface.
type Thenable interface {
	Then(resolve func(any), reject func(any), notify func(any))
}

// newThenableHandler builds the Deferred-backed handler spec §4.2
// describes for an assimilated foreign thenable: a Deferred that has
// already, at construction, enqueued the AssimilateTask which will
// invoke the foreign Then call.
func newThenableHandler(th Thenable, sched Scheduler) handler {
	d := newDeferred(sched)
	sched.Enqueue(&AssimilateTask{thenable: th, target: d})
	return d
}
