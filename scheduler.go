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

// Task is a unit of work the Scheduler runs outside the stack of whatever
// code enqueued it.
//
// Run must never be called by the enqueuer; it's the Scheduler's job to
// call it, at some unspecified later point, after the current synchronous
// scope has unwound.
type Task interface {
	Run()
}

// Scheduler is the opaque microtask queue the core depends on. It's the
// one external collaborator the resolution algorithm and the handler
// machinery can't do without: every settlement, every chained reaction,
// and every assimilation step reaches the outside world only through
// Enqueue.
//
// Implementations must run enqueued tasks in FIFO order, and must never
// run a task synchronously within the call to Enqueue.
type Scheduler interface {
	Enqueue(task Task)
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func()

// Run calls f.
func (f TaskFunc) Run() { f() }
