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
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
)

func (m *AllOwners) onPreJoin(execCtx *hook.ExecutionContext) error {
	inf := execCtx.Info.(*hook.MUCOccupantInfo)

	spec := m.specs.Load()
	if spec.IsHealthCheckRoom(inf.RoomJID) {
		return nil
	}
	userJID := inf.UserJID.ToBareJID()
	if m.hosts.IsAdmin(userJID, inf.RoomJID.Domain()) {
		return nil
	}
	cls := m.classifier.Classify(inf.RoomJID)
	if cls.Moderated {
		claims, _ := m.claims.Claims(inf.UserJID)
		if err := Authorize(claims, cls.RoomName, cls.Subdomain); err != nil {
			reportAuthorizationDenied(err)
			level.Debug(m.logger).Log("msg", "promotion denied",
				"room", inf.RoomJID.String(),
				"jid", userJID.String(),
				"err", err,
			)
			return nil
		}
	}
	if inf.OccupantsCount > AutoModeratorLimit {
		return nil
	}
	m.tracker.MarkPending(userJID)

	level.Debug(m.logger).Log("msg", "promotion pending",
		"room", inf.RoomJID.String(),
		"jid", userJID.String(),
		"occupants", inf.OccupantsCount,
	)
	return nil
}

func (m *AllOwners) onJoined(execCtx *hook.ExecutionContext) error {
	inf := execCtx.Info.(*hook.MUCOccupantInfo)

	userJID := inf.UserJID.ToBareJID()
	if !m.tracker.TakeIfPending(userJID) {
		return nil
	}
	err := m.muc.SetAffiliation(execCtx.Context, inf.RoomJID, true, nil, userJID, mucmodel.Owner)
	if err != nil {
		level.Warn(m.logger).Log("msg", "failed to promote occupant",
			"room", inf.RoomJID.String(),
			"jid", userJID.String(),
			"err", err,
		)
		return nil
	}
	reportPromotion()

	level.Info(m.logger).Log("msg", "occupant promoted to owner",
		"room", inf.RoomJID.String(),
		"jid", userJID.String(),
	)
	return nil
}
