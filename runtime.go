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

// Config is the environment configuration passed to Make. It's the
// entire configuration surface of this module — there's no separate
// file format to parse, since the core itself does no I/O.
type Config struct {
	// Scheduler is required: every Promise the returned Runtime creates
	// enqueues its tasks here.
	Scheduler Scheduler

	// Decorate, when non-nil, is called on the freshly constructed
	// Runtime; its return value replaces it. This is the hook for
	// optional environment decoration (spec §1) — e.g. returning a
	// Runtime built by Make around a debugging Scheduler instead.
	Decorate func(*Runtime) *Runtime
}

// Runtime is the Go rendition of spec §6's "constructed Promise type":
// it owns the Scheduler every Promise it creates is bound to, and the
// lazily-built Empty() singleton.
type Runtime struct {
	scheduler Scheduler

	// emptyPromise is built on first access, not here at construction
	// time, so there's no field-initialization-order hazard — see
	// spec §9's Open Question about the source's emptyPromise caching.
	emptyPromise *Promise
}

// Make constructs a Runtime bound to cfg.Scheduler. It panics if
// cfg.Scheduler is nil.
func Make(cfg Config) *Runtime {
	if cfg.Scheduler == nil {
		panic(ErrSchedulerRequired)
	}

	rt := &Runtime{scheduler: cfg.Scheduler}

	if cfg.Decorate != nil {
		rt = cfg.Decorate(rt)
	}

	return rt
}

// Fatal enqueues a FatalErrorTask that rethrows err at the top level, by
// way of the Scheduler's own goroutine (or whatever unwinds its tasks).
// The library itself never calls this for ordinary rejections — it's the
// escape hatch a host uses deliberately, e.g. after inspecting a settled
// Promise's rejection and deciding it was never meant to be handled:
//
//	if snap := p.Inspect(); snap.State == promise.Rejected {
//	    rt.Fatal(&promise.UncaughtError{Reason: snap.Reason})
//	}
func (rt *Runtime) Fatal(err any) {
	rt.scheduler.Enqueue(&FatalErrorTask{err: err})
}
