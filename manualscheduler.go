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

// ManualScheduler is a Scheduler a test controls by hand: Enqueue only
// appends to an in-process queue, and nothing runs until Step or Flush
// is called. This is what makes the always-async property (I2) and the
// FIFO drain order (I5) straightforward to assert deterministically,
// with no goroutines, no time.Sleep, and no races.
type ManualScheduler struct {
	queue []Task
}

// NewManualScheduler returns an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Enqueue appends task to the queue. It never runs task.
func (s *ManualScheduler) Enqueue(task Task) {
	s.queue = append(s.queue, task)
}

// Pending returns the number of tasks not yet run.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Step runs the oldest queued task, if any, and reports whether it did.
// Running a task may enqueue more tasks, which Step does not also run.
func (s *ManualScheduler) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	t := s.queue[0]
	s.queue = s.queue[1:]
	t.Run()
	return true
}

// Flush runs queued tasks, including ones enqueued by tasks it just ran,
// until the queue is empty, and returns how many it ran.
func (s *ManualScheduler) Flush() int {
	n := 0
	for s.Step() {
		n++
	}
	return n
}
