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

// FulfillTask applies onFulfilled (or passes the value through
// unchanged, when it's absent) and resolves the downstream Deferred with
// the result, per spec §4.3/§4.4.
type FulfillTask struct {
	resolve     func(any)
	receiver    any
	onFulfilled ReactionFunc
	value       any
}

func (t *FulfillTask) Run() {
	debug(eventFulfillTask)
	if t.onFulfilled == nil {
		t.resolve(t.value)
		return
	}
	t.resolve(tryCatch(t.onFulfilled, t.receiver, t.value))
}

// RejectTask applies onRejected, when present, and resolves the
// downstream Deferred with whatever it returns (a callback that returns
// normally recovers the chain, per spec §4.3). When onRejected is
// absent, the rejection propagates unchanged.
type RejectTask struct {
	resolve    func(any)
	receiver   any
	onRejected ReactionFunc
	reason     any
}

func (t *RejectTask) Run() {
	debug(eventRejectTask)
	if t.onRejected == nil {
		t.resolve(rejectedHandler{reason: t.reason})
		return
	}
	t.resolve(tryCatch(t.onRejected, t.receiver, t.reason))
}

// AssimilateTask invokes a foreign Thenable's Then method, guarding
// against a synchronous panic by rejecting the target Deferred with the
// recovered value. Thanks to the target Deferred's own idempotence (I1),
// multiple synchronous calls to resolve/reject from within Then are
// absorbed automatically, as are notify calls made after the first of
// them; each notify call made before that is delivered.
type AssimilateTask struct {
	thenable Thenable
	target   *deferredHandler
}

func (t *AssimilateTask) Run() {
	debug(eventAssimilateTask)
	defer func() {
		if v := recover(); v != nil {
			t.target.reject(v)
		}
	}()
	t.thenable.Then(t.target.resolve, t.target.reject, t.target.notify)
}

// ProgressTask replays a progress value through each consumer captured
// at the moment notify was called. A panic from a user onProgress
// callback is forwarded as the notification's payload, not as a
// rejection — deliberately asymmetric with fulfillment/rejection
// handling, per spec §9's Open Question.
type ProgressTask struct {
	consumers []reaction
	value     any
}

func (t *ProgressTask) Run() {
	debug(eventProgressTask)
	for _, r := range t.consumers {
		if r.notify == nil {
			continue
		}
		if r.onProgress == nil {
			r.notify(t.value)
			continue
		}
		runProgress(r, t.value)
	}
}

func runProgress(r reaction, value any) {
	defer func() {
		if v := recover(); v != nil {
			r.notify(v)
		}
	}()
	result := r.onProgress(r.receiver, value)
	r.notify(result)
}

// ForwardingTask opaquely carries a reaction and replays it against a
// handler that has just settled, per spec §4.4.
type ForwardingTask struct {
	handler  handler
	reaction reaction
	sched    Scheduler
}

func (t *ForwardingTask) Run() {
	debug(eventForwardingTask)
	t.handler.when(t.reaction, t.sched)
}

// FatalErrorTask rethrows a stored error in a fresh task, letting it
// surface at the top level through the host's own panic/recover
// machinery. The core never uses this for ordinary rejections — it's
// the deliberate escape hatch spec §6/§7 calls "the fatal error surface".
type FatalErrorTask struct {
	err any
}

func (t *FatalErrorTask) Run() {
	debug(eventFatalErrorTask)
	panic(t.err)
}
