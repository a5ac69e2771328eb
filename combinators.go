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

// Resolve wraps x in a Promise bound to rt. If x is already a trusted
// promise of rt, it's returned as-is: Resolve(X) === X, by identity.
func (rt *Runtime) Resolve(x any) *Promise {
	if pr, ok := x.(*Promise); ok && pr.rt == rt {
		return pr
	}
	return rt.wrap(classify(x, nil, rt.scheduler))
}

// Reject returns a Promise already rejected with reason.
func (rt *Runtime) Reject(reason any) *Promise {
	return rt.wrap(rejectedHandler{reason: reason})
}

// Empty returns the singleton promise that never settles. It's built on
// first call, not at Make time.
func (rt *Runtime) Empty() *Promise {
	if rt.emptyPromise == nil {
		rt.emptyPromise = rt.wrap(emptyHandler{})
	}
	return rt.emptyPromise
}

// All returns a Promise that fulfills with a slice holding each input's
// eventual value, in the same order as xs, once every input has
// fulfilled. Any input's rejection rejects the result immediately (first
// rejection wins); later settlements of other inputs are absorbed by I1.
// An empty xs fulfills immediately with an empty slice.
func (rt *Runtime) All(xs []any) *Promise {
	d := newDeferred(rt.scheduler)

	if len(xs) == 0 {
		d.resolve([]any{})
		return rt.wrap(d)
	}

	results := make([]any, len(xs))
	remaining := len(xs)

	for i, x := range xs {
		i := i
		h := classify(x, nil, rt.scheduler)
		h.when(reaction{
			resolve: func(v any) {
				// a RejectTask with no onRejected resolves its target
				// with a rejectedHandler wrapping the reason, rather
				// than a plain value — forward that straight through
				// instead of treating it as this slot's result.
				if rh, ok := v.(handler); ok {
					d.resolve(rh)
					return
				}
				results[i] = v
				remaining--
				if remaining == 0 {
					d.resolve(append([]any(nil), results...))
				}
			},
			notify: func(any) {},
		}, rt.scheduler)
	}

	return rt.wrap(d)
}

// Race returns a Promise that settles the same way as the first of xs to
// settle, in scheduler FIFO order. An empty xs returns the same Empty()
// singleton, by identity, as documented in spec §4.5/§8.
func (rt *Runtime) Race(xs []any) *Promise {
	if len(xs) == 0 {
		return rt.Empty()
	}

	d := newDeferred(rt.scheduler)
	for _, x := range xs {
		h := classify(x, nil, rt.scheduler)
		h.when(reaction{
			resolve: d.resolve,
			notify:  func(any) {},
		}, rt.scheduler)
	}

	return rt.wrap(d)
}
