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

// deferredHandler is a pending handler with a consumer queue: the target
// of resolve/reject/notify, and the handler every user-constructed
// Promise starts out wrapping.
//
// It's a one-shot state machine (I1): resolved flips from false to true
// exactly once, and every resolve/reject call after that is a silent
// no-op. There's no lock here, by design — the core assumes a
// single-threaded, run-to-completion host (spec §5's NON-GOALS).
type deferredHandler struct {
	sched Scheduler

	resolved bool
	settled  handler // valid once resolved: the traversed terminal handler

	queue []reaction // consumer queue, released (nilled) on settlement

	// receiver is never assigned in this package: Deferreds created by
	// NewPromise, Then, or the combinators all keep it nil, so a Then on
	// a Deferred-backed promise passes no receiver on. A receiver bound
	// with With reaches only the reactions attached to the With promise.
	receiver any
}

func newDeferred(sched Scheduler) *deferredHandler {
	return &deferredHandler{sched: sched}
}

func (d *deferredHandler) receiverOf() any { return d.receiver }

func (d *deferredHandler) when(r reaction, sched Scheduler) {
	if d.resolved {
		d.settled.when(r, sched)
		return
	}
	// not resolved yet: queue the reaction; it's replayed, wrapped in a
	// ForwardingTask against the settled handler, once join runs.
	d.queue = append(d.queue, r)
}

func (d *deferredHandler) traverse() handler {
	if d.resolved {
		return d.settled.traverse()
	}
	return d
}

func (d *deferredHandler) inspect() StateSnapshot {
	if d.resolved {
		return d.settled.inspect()
	}
	return StateSnapshot{State: Pending}
}

// resolve classifies x and joins the result into this Deferred. x may
// also already be a handler (as produced by tryCatch on a panic, or by
// RejectTask's no-onRejected fallback) — in that case it's joined as-is,
// without running back through the classifier.
func (d *deferredHandler) resolve(x any) {
	if h, ok := x.(handler); ok {
		d.join(h)
		return
	}
	d.join(classify(x, d, d.sched))
}

// reject joins a fresh Rejected handler wrapping reason.
func (d *deferredHandler) reject(reason any) {
	d.join(rejectedHandler{reason: reason})
}

// join is the _join algorithm from spec §4.2: a no-op once resolved,
// otherwise it stores the traversed terminal handler and drains the
// consumer queue, each reaction replayed as a ForwardingTask against that
// handler (I5: FIFO order of attachment).
func (d *deferredHandler) join(h handler) {
	if d.resolved {
		return
	}
	d.resolved = true
	d.settled = h.traverse()

	q := d.queue
	d.queue = nil

	for _, r := range q {
		d.sched.Enqueue(&ForwardingTask{handler: d.settled, reaction: r, sched: d.sched})
	}
}

// notify enqueues a ProgressTask snapshotting the consumer queue as it
// stands right now. Consumers attached after this call won't see this
// notification. notify is a no-op once resolved; a notification made
// while still pending is delivered to its snapshot even if the Deferred
// settles before the ProgressTask runs.
func (d *deferredHandler) notify(x any) {
	if d.resolved {
		return
	}
	snapshot := make([]reaction, len(d.queue))
	copy(snapshot, d.queue)
	d.sched.Enqueue(&ProgressTask{consumers: snapshot, value: x})
}
