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

// Command promisedemo wires a Runtime to a GoScheduler, runs a short
// chain through Then, Catch and the notify side channel, prints what each
// reaction receives, and finally prints the inspected state of the
// combined All promise.
package main

import (
	"errors"
	"fmt"

	"github.com/arosuno/asyncval"
)

func main() {
	sched := promise.NewGoScheduler(8)
	defer sched.Close()

	rt := promise.Make(promise.Config{Scheduler: sched})

	done := make(chan struct{})

	var resolveStep, notifyStep func(any)
	step := rt.NewPromise(func(resolve func(any), reject func(any), notify func(any)) {
		resolveStep, notifyStep = resolve, notify
	})

	doubled := step.Then(func(receiver any, v any) any {
		n := v.(int)
		fmt.Printf("step settled with %d, doubling it\n", n)
		return n * 2
	}, nil, func(receiver any, v any) any {
		fmt.Printf("progress: %v\n", v)
		return v
	})

	checked := doubled.Then(func(receiver any, v any) any {
		n := v.(int)
		if n != 42 {
			panic(fmt.Sprintf("expected 42, got %d", n))
		}
		return n
	}, nil, nil)

	var rejectFlaky func(any)
	flaky := rt.NewPromise(func(resolve func(any), reject func(any), notify func(any)) {
		rejectFlaky = reject
	})

	recovered := flaky.Catch(func(receiver any, reason any) any {
		fmt.Printf("recovered from: %v\n", reason)
		return "fallback value"
	})

	all := rt.All([]any{checked, recovered})

	all.Then(func(receiver any, v any) any {
		fmt.Printf("all settled: %v\n", v)
		close(done)
		return nil
	}, func(receiver any, reason any) any {
		fmt.Printf("all rejected: %v\n", reason)
		close(done)
		return nil
	}, nil)

	// Every reaction is attached before anything is enqueued, so the
	// worker goroutine never runs tasks while this goroutine is still
	// attaching them.
	notifyStep("starting step")
	resolveStep(21)
	rejectFlaky(errors.New("simulated failure"))

	<-done

	fmt.Println("final state:", all.Inspect())
}
