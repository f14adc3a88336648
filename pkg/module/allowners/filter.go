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
	"context"

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/c2s"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	"github.com/jackal-xmpp/allowners/pkg/muc"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const filterName = ModuleName

type filterInstaller interface {
	AddFilter(name string, fn c2s.FilterFunc, priority hook.Priority)
}

func (m *AllOwners) onStreamRegistered(execCtx *hook.ExecutionContext) error {
	stm, ok := execCtx.Sender.(filterInstaller)
	if !ok {
		return nil
	}
	stm.AddFilter(filterName, m.filterPresence, hook.LowPriority)
	return nil
}

// filterPresence drops outbound room presences that would expose a not yet promoted occupant.
func (m *AllOwners) filterPresence(_ context.Context, elem stravaganza.Element) stravaganza.Element {
	if m.tracker.IsEmpty() {
		return elem
	}
	pr, ok := elem.(*stravaganza.Presence)
	if !ok {
		return elem
	}
	toJID := pr.ToJID()
	if toJID == nil {
		return elem
	}
	fromJID := pr.FromJID()
	if fromJID == nil || fromJID.Domain() != m.host {
		return elem
	}
	if pr.Attribute(stravaganza.Type) == stravaganza.ErrorType {
		if m.tracker.ClearIfPresent(toJID) {
			reportStalePendingCleared()
			level.Debug(m.logger).Log("msg", "stale promotion cleared", "jid", toJID.ToBareJID().String())
		}
		return elem
	}
	x := pr.ChildNamespace("x", muc.UserNamespace)
	if x == nil {
		return elem
	}
	if m.tracker.IsPending(toJID) && hasStatusCode(x, muc.StatusSelfPresence) {
		reportPresenceSuppressed(suppressedSelfPresence)
		return nil
	}
	for _, item := range x.Children("item") {
		itemJID := item.Attribute("jid")
		if len(itemJID) == 0 {
			continue
		}
		j, err := jid.NewWithString(itemJID, false)
		if err != nil {
			continue
		}
		if m.tracker.IsPending(j) {
			reportPresenceSuppressed(suppressedBroadcast)
			return nil
		}
	}
	return elem
}

func hasStatusCode(x stravaganza.Element, code string) bool {
	for _, st := range x.Children("status") {
		if st.Attribute("code") == code {
			return true
		}
	}
	return false
}
