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

// GoScheduler is the default, production Scheduler. It hands every
// enqueued Task to one dedicated worker goroutine over a channel, which
// runs tasks one at a time, in the order they were sent — the FIFO,
// outside-the-caller's-stack contract spec §1 requires of the
// scheduler, built from the same channel/goroutine primitives the
// teacher reaches for throughout its own dispatch code.
//
// A GoScheduler must be closed with Close once it's no longer needed, or
// its worker goroutine leaks.
type GoScheduler struct {
	tasks chan Task
	done  chan struct{}
}

// NewGoScheduler starts a GoScheduler with the given task-buffer size.
// A size of 0 makes Enqueue block until the worker goroutine is ready to
// receive, which is fine for low-throughput use but can deadlock a
// resolver that enqueues from inside the same program's only goroutine
// and then waits synchronously for settlement — prefer a small positive
// buffer for anything beyond toy programs.
func NewGoScheduler(bufferSize int) *GoScheduler {
	s := &GoScheduler{
		tasks: make(chan Task, bufferSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *GoScheduler) run() {
	for {
		select {
		case t := <-s.tasks:
			t.Run()
		case <-s.done:
			return
		}
	}
}

// Enqueue sends task to the worker goroutine. It never runs task inline.
func (s *GoScheduler) Enqueue(task Task) {
	s.tasks <- task
}

// Close stops the worker goroutine. Tasks already sent but not yet run
// are dropped; Enqueue must not be called after Close.
func (s *GoScheduler) Close() {
	close(s.done)
}
