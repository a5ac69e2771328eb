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

// Package promise is the handler machinery behind a general-purpose
// asynchronous-value core: promise state, the algorithm that assimilates
// arbitrary thenables into trusted promises, the chaining rule that
// derives a new promise from a user transformation, and the scheduling
// discipline that guarantees reactions run in a later task rather than
// synchronously.
//
// A Promise has three states, and is in exactly one of them at any time:
// Pending: not yet settled. Fulfilled: settled with a value. Rejected:
// settled with a reason. Once a Promise leaves Pending, it never leaves
// whichever of Fulfilled or Rejected it settled to.
//
// Everything a program does with this package happens through a
// Runtime, built with Make(Config). The Config's Scheduler is the one
// external collaborator the core depends on: an opaque FIFO task queue
// that's assumed to run its tasks outside the caller's stack. Two
// Schedulers ship with this module: GoScheduler, backed by a goroutine
// and a channel, for production use; and ManualScheduler, hand-stepped,
// for deterministic tests.
//
// General notes:
//
//   - Reactions attached with Then/Catch/Otherwise never run
//     synchronously, even on an already-settled promise — they always
//     go through the Scheduler.
//   - Resolving a Deferred with a trusted promise adopts its state; it
//     never nests one promise inside another.
//   - Resolving a Deferred with something that eventually follows back
//     to itself rejects with a TypeError, rather than recursing forever.
//   - This package has no concept of cancellation, timers, or I/O — see
//     the module's SPEC_FULL.md for the full list of non-goals.
package promise
