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

// followingHandler forwards to another handler, optionally rebinding the
// receiver that subsequent reactions run with. It backs Promise.With /
// Promise.WithThis — a deliberate, documented break from strict A+
// compliance (spec §9): ordinary promise chains never observe a receiver
// rebind, only chains built through With/WithThis do.
//
// followingHandler always points to a strictly earlier-created handler;
// there are no cycles in the handler graph by construction (spec §9).
type followingHandler struct {
	handler  handler
	receiver any
}

func (f *followingHandler) when(r reaction, sched Scheduler) {
	if f.receiver != nil {
		r.receiver = f.receiver
	}
	f.handler.traverse().when(r, sched)
}

func (f *followingHandler) traverse() handler {
	return f.handler.traverse()
}

func (f *followingHandler) inspect() StateSnapshot {
	return f.handler.traverse().inspect()
}

func (f *followingHandler) receiverOf() any { return f.receiver }
