// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package allowners

import (
	"sync"
	"sync/atomic"

	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// Tracker keeps the set of users whose promotion is pending.
// Entries are keyed by bare JID.
type Tracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
	size    atomic.Int64
}

// NewTracker returns an empty promotion tracker.
func NewTracker() *Tracker {
	return &Tracker{
		pending: make(map[string]struct{}),
	}
}

// MarkPending flags j as pending promotion.
func (t *Tracker) MarkPending(j *jid.JID) {
	k := j.ToBareJID().String()

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[k]; ok {
		return
	}
	t.pending[k] = struct{}{}
	t.size.Add(1)
}

// TakeIfPending removes j from the pending set, reporting whether it was present.
func (t *Tracker) TakeIfPending(j *jid.JID) bool {
	return t.remove(j)
}

// ClearIfPresent drops a stale pending entry for j, reporting whether it was present.
func (t *Tracker) ClearIfPresent(j *jid.JID) bool {
	return t.remove(j)
}

// IsPending tells whether j is pending promotion.
func (t *Tracker) IsPending(j *jid.JID) bool {
	if t.IsEmpty() {
		return false
	}
	k := j.ToBareJID().String()

	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[k]
	return ok
}

// IsEmpty tells whether no promotion is pending.
func (t *Tracker) IsEmpty() bool {
	return t.size.Load() == 0
}

// Len returns the number of pending promotions.
func (t *Tracker) Len() int {
	return int(t.size.Load())
}

func (t *Tracker) remove(j *jid.JID) bool {
	k := j.ToBareJID().String()

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[k]; !ok {
		return false
	}
	delete(t.pending, k)
	t.size.Add(-1)
	return true
}
