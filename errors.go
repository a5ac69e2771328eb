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

import (
	"errors"
	"fmt"
)

// ErrSchedulerRequired is the value Make panics with when called without
// a Scheduler.
var ErrSchedulerRequired = errors.New("promise: a scheduler is required")

// nilCallbackPanicMsg is the panic message used when a nil callback is
// passed to a method that requires one.
const nilCallbackPanicMsg = "promise: the provided callback is nil"

// TypeError reports a resolution that the classifier refuses to perform,
// such as resolving a Deferred with a promise that follows back to itself
// (I4). It corresponds to spec's "Rejected(TypeError indicating cycle)".
type TypeError struct {
	msg string
}

func (e *TypeError) Error() string {
	return "promise: type error: " + e.msg
}

// ErrCyclicResolution is the TypeError used to reject a Deferred that was
// resolved with a promise chain which eventually points back to itself.
var ErrCyclicResolution = &TypeError{msg: "chaining cycle detected"}

// UncaughtPanic wraps a panic value that escaped a reaction callback
// (onFulfilled, onRejected, or a resolver) and was never recovered by a
// later reaction in the chain, by the time the fatal path surfaced it.
type UncaughtPanic struct {
	v any
}

func (e *UncaughtPanic) Error() string {
	return fmt.Sprintf("promise: uncaught panic in the promise chain: %v", e.v)
}

// V returns the original panic value.
func (e *UncaughtPanic) V() any {
	return e.v
}

// UncaughtError wraps a rejection reason that reached the fatal path
// without ever being handled by a Catch/Otherwise reaction.
type UncaughtError struct {
	Reason any
}

func (e *UncaughtError) Error() string {
	return fmt.Sprintf("promise: uncaught rejection: %v", e.Reason)
}

// Unwrap returns the wrapped reason, when it's itself an error.
func (e *UncaughtError) Unwrap() error {
	if err, ok := e.Reason.(error); ok {
		return err
	}
	return nil
}
