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

package promise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arosuno/asyncval"
)

func newTestRuntime() (*promise.Runtime, *promise.ManualScheduler) {
	sched := promise.NewManualScheduler()
	rt := promise.Make(promise.Config{Scheduler: sched})
	return rt, sched
}

// fakeThenable is a foreign, possibly misbehaving thenable used to
// exercise assimilation (spec §4.1 scenario 4).
type fakeThenable struct {
	run func(resolve func(any), reject func(any), notify func(any))
}

func (f fakeThenable) Then(resolve func(any), reject func(any), notify func(any)) {
	f.run(resolve, reject, notify)
}

func TestBasicFulfillment(t *testing.T) {
	rt, sched := newTestRuntime()

	p := rt.NewPromise(func(resolve func(any), reject func(any), notify func(any)) {
		resolve(42)
	})

	// scenario 1: synchronous inspection immediately after construction
	// sees the already-settled state.
	snap := p.Inspect()
	assert.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, 42, snap.Value)

	chained := p.Then(func(receiver any, v any) any {
		return v.(int) + 1
	}, nil, nil)

	// the chained promise hasn't been drained through the scheduler yet.
	assert.Equal(t, promise.Pending, chained.Inspect().State)

	sched.Flush()

	snap = chained.Inspect()
	require.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, 43, snap.Value)
}

func TestThrownInResolver(t *testing.T) {
	rt, sched := newTestRuntime()

	p := rt.NewPromise(func(resolve func(any), reject func(any), notify func(any)) {
		panic("E")
	})
	sched.Flush()

	snap := p.Inspect()
	require.Equal(t, promise.Rejected, snap.State)
	assert.Equal(t, "E", snap.Reason)
}

func TestCycleRejectsWithTypeError(t *testing.T) {
	rt, sched := newTestRuntime()

	p := rt.Resolve(1)

	// chain resolves with itself once the scheduler runs its FulfillTask;
	// chain is already assigned by then, since Then returns synchronously.
	var chain *promise.Promise
	chain = p.Then(func(receiver any, v any) any {
		return chain
	}, nil, nil)

	sched.Flush()

	snap := chain.Inspect()
	require.Equal(t, promise.Rejected, snap.State)
	typeErr, ok := snap.Reason.(*promise.TypeError)
	require.True(t, ok, "expected a *promise.TypeError, got %T", snap.Reason)
	assert.ErrorIs(t, typeErr, promise.ErrCyclicResolution)
}

func TestThenableAdoption(t *testing.T) {
	rt, sched := newTestRuntime()

	th := fakeThenable{run: func(resolve func(any), reject func(any), notify func(any)) {
		resolve(7)
	}}

	p := rt.Resolve(th)

	// adoption is asynchronous: right after Resolve, nothing has run yet.
	assert.Equal(t, promise.Pending, p.Inspect().State)

	chained := p.Then(func(receiver any, v any) any { return v }, nil, nil)
	sched.Flush()

	snap := chained.Inspect()
	require.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, 7, snap.Value)
}

func TestRaceFirstInEnqueueOrderWins(t *testing.T) {
	rt, sched := newTestRuntime()

	pending := rt.Empty()
	a := rt.Resolve("a")
	b := rt.Resolve("b")

	winner := rt.Race([]any{pending, a, b})
	sched.Flush()

	snap := winner.Inspect()
	require.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, "a", snap.Value)
}

func TestRaceEmptyIsEmptySingleton(t *testing.T) {
	rt, _ := newTestRuntime()

	assert.Same(t, rt.Empty(), rt.Race(nil))
}

func TestAllPreservesIndexOrder(t *testing.T) {
	rt, sched := newTestRuntime()

	var resolveThird func(any)
	third := rt.NewPromise(func(resolve func(any), reject func(any), notify func(any)) {
		// settled later than the other two, but must still land at index 2.
		resolveThird = resolve
	})

	all := rt.All([]any{1, rt.Resolve(2), third})
	sched.Flush()
	assert.Equal(t, promise.Pending, all.Inspect().State)

	resolveThird(3)
	sched.Flush()

	snap := all.Inspect()
	require.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, []any{1, 2, 3}, snap.Value)
}

func TestAllEmptyResolvesImmediately(t *testing.T) {
	rt, sched := newTestRuntime()

	all := rt.All(nil)
	sched.Flush()

	snap := all.Inspect()
	require.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, []any{}, snap.Value)
}

func TestAllRejectsOnFirstRejection(t *testing.T) {
	rt, sched := newTestRuntime()

	ok := rt.Resolve(1)
	bad := rt.Reject("boom")

	all := rt.All([]any{ok, bad, rt.Empty()})
	sched.Flush()

	snap := all.Inspect()
	require.Equal(t, promise.Rejected, snap.State)
	assert.Equal(t, "boom", snap.Reason)
}

func TestMultipleReactionsDispatchInAttachmentOrder(t *testing.T) {
	rt, sched := newTestRuntime()

	p := rt.Resolve(1)
	var order []int

	p.Then(func(receiver any, v any) any { order = append(order, 1); return nil }, nil, nil)
	p.Then(func(receiver any, v any) any { order = append(order, 2); return nil }, nil, nil)
	p.Then(func(receiver any, v any) any { order = append(order, 3); return nil }, nil, nil)

	sched.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCatchRecoversAndPropagates(t *testing.T) {
	rt, sched := newTestRuntime()

	p := rt.Reject("oops")
	recovered := p.Catch(func(receiver any, reason any) any {
		return "recovered: " + reason.(string)
	})
	sched.Flush()

	snap := recovered.Inspect()
	require.Equal(t, promise.Fulfilled, snap.State)
	assert.Equal(t, "recovered: oops", snap.Value)

	unhandled := rt.Reject("again").Then(func(receiver any, v any) any { return v }, nil, nil)
	sched.Flush()
	assert.Equal(t, promise.Rejected, unhandled.Inspect().State)
}

func TestWithBindsReceiverToReactions(t *testing.T) {
	rt, sched := newTestRuntime()

	type ctx struct{ name string }
	receiver := &ctx{name: "room"}

	var seen any
	rt.Resolve(1).With(receiver).Then(func(r any, v any) any {
		seen = r
		return v
	}, nil, nil)

	sched.Flush()
	assert.Same(t, receiver, seen)
}

func TestResolveReturnsSamePromiseForTrustedPromise(t *testing.T) {
	rt, _ := newTestRuntime()

	p := rt.Resolve(1)
	assert.Same(t, p, rt.Resolve(p))
}
