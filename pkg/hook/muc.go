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

package hook

import (
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const (
	// MUCOccupantPreJoin hook runs before an occupant is added to a room and before any presence is broadcast.
	// Returning ErrStopped aborts the join silently.
	MUCOccupantPreJoin = "muc.occupant.pre_join"

	// MUCOccupantJoined hook runs right after an occupant has been added to a room.
	MUCOccupantJoined = "muc.occupant.joined"

	// MUCOccupantLeft hook runs after an occupant left a room.
	MUCOccupantLeft = "muc.occupant.left"

	// MUCAffiliationChanged hook runs after a room affiliation has been modified.
	MUCAffiliationChanged = "muc.affiliation.changed"

	// MUCAdminAffiliationSet hook runs before a muc#admin affiliation set request is processed.
	// Returning ErrStopped marks the request as handled.
	MUCAdminAffiliationSet = "muc.admin.affiliation_set"

	// MUCRoomDestroyed hook runs after an empty room has been destroyed.
	MUCRoomDestroyed = "muc.room.destroyed"
)

// MUCOccupantInfo contains all info associated to a MUC occupant event.
type MUCOccupantInfo struct {
	// RoomJID is the bare room address.
	RoomJID *jid.JID

	// OccupantJID is the room@service/nick occupant address.
	OccupantJID *jid.JID

	// UserJID is the real full JID of the occupant.
	UserJID *jid.JID

	// OccupantsCount is the number of room occupants at the time the event was emitted.
	// In MUCOccupantPreJoin the joining occupant is not counted.
	OccupantsCount int

	// Presence is the presence stanza that triggered the event.
	Presence *stravaganza.Presence
}

// MUCAffiliationInfo contains all info associated to a MUC affiliation change event.
type MUCAffiliationInfo struct {
	// RoomJID is the bare room address.
	RoomJID *jid.JID

	// UserJID is the bare JID whose affiliation changed.
	UserJID *jid.JID

	// Affiliation is the new affiliation value.
	Affiliation string

	// Privileged tells whether the change bypassed permission checks.
	Privileged bool
}

// MUCAdminInfo contains all info associated to a muc#admin request event.
type MUCAdminInfo struct {
	// RoomJID is the bare request destination.
	// For host-addressed requests it is the conference host itself.
	RoomJID *jid.JID

	// IQ is the admin request.
	IQ *stravaganza.IQ
}

// MUCRoomInfo contains all info associated to a MUC room event.
type MUCRoomInfo struct {
	// RoomJID is the bare room address.
	RoomJID *jid.JID
}
