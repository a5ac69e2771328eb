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

import "fmt"

// State is the synchronously observable state of a Promise, at some
// instant. It never regresses: a Promise that has left Pending stays in
// whichever of Fulfilled or Rejected it settled to, forever (I1).
type State int

const (
	// Pending means the promise hasn't settled yet.
	Pending State = iota
	// Fulfilled means the promise settled with a value.
	Fulfilled
	// Rejected means the promise settled with a reason.
	Rejected
)

func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	case Pending:
		return "pending"
	default:
		return "<unknown>"
	}
}

// StateSnapshot is a synchronous, immutable view of a promise's state, as
// returned by Promise.Inspect. Value is only meaningful when State is
// Fulfilled; Reason is only meaningful when State is Rejected.
type StateSnapshot struct {
	State  State
	Value  any
	Reason any
}

func (s StateSnapshot) String() string {
	switch s.State {
	case Fulfilled:
		return "{state: fulfilled, value: " + toString(s.Value) + "}"
	case Rejected:
		return "{state: rejected, reason: " + toString(s.Reason) + "}"
	default:
		return "{state: pending}"
	}
}

func toString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}
