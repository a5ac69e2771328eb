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
)

func TestProgressDeliveredToConsumersPresentAtNotifyTime(t *testing.T) {
	rt, sched := newTestRuntime()

	var notify func(any)
	p := rt.NewPromise(func(resolve func(any), reject func(any), nf func(any)) {
		notify = nf
	})

	var seenBefore, seenAfter []any

	p.Then(nil, nil, func(receiver any, v any) any {
		seenBefore = append(seenBefore, v)
		return v
	})

	notify(1)
	sched.Flush()

	// a consumer attached only after this notify call must not see it.
	p.Then(nil, nil, func(receiver any, v any) any {
		seenAfter = append(seenAfter, v)
		return v
	})

	notify(2)
	sched.Flush()

	assert.Equal(t, []any{1, 2}, seenBefore)
	assert.Equal(t, []any{2}, seenAfter)
}

func TestProgressHandlerPanicForwardsAsNotificationNotRejection(t *testing.T) {
	rt, sched := newTestRuntime()

	var notify func(any)
	p := rt.NewPromise(func(resolve func(any), reject func(any), nf func(any)) {
		notify = nf
	})

	var got any
	p.Then(nil, nil, func(receiver any, v any) any {
		panic("progress boom")
	})
	p.Then(nil, nil, func(receiver any, v any) any {
		got = v
		return nil
	})

	// the first reaction's panic must not stop the second one from
	// running, and must not turn into a rejection anywhere.
	notify(1)
	sched.Flush()

	assert.Equal(t, 1, got)
}

func TestProgressStopsAfterSettlement(t *testing.T) {
	rt, sched := newTestRuntime()

	var notify func(any)
	p := rt.NewPromise(func(resolve func(any), reject func(any), nf func(any)) {
		notify = nf
		resolve("done")
	})
	sched.Flush()

	var got []any
	p.Then(nil, nil, func(receiver any, v any) any {
		got = append(got, v)
		return v
	})

	notify("late")
	sched.Flush()

	assert.Empty(t, got)
}
