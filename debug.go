// Copyright 2024 Ahmad Sameh(asmsh)
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

// debugEvent tags a point in the task lifecycle, for tracing under the
// enable_promise_debug build tag (see debug_enabled.go). With the tag
// absent, debug_disabled.go compiles every call site down to nothing.
type debugEvent int

const (
	_ debugEvent = iota
	eventFulfillTask
	eventRejectTask
	eventAssimilateTask
	eventProgressTask
	eventForwardingTask
	eventFatalErrorTask
)

func (e debugEvent) String() string {
	switch e {
	case eventFulfillTask:
		return "fulfill"
	case eventRejectTask:
		return "reject"
	case eventAssimilateTask:
		return "assimilate"
	case eventProgressTask:
		return "progress"
	case eventForwardingTask:
		return "forward"
	case eventFatalErrorTask:
		return "fatal"
	default:
		return "<unknown>"
	}
}
