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

package mucmodel

import (
	"sort"

	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// RoomConfig contains room configuration parameters.
type RoomConfig struct {
	Public       bool   `fig:"public" default:"true"`
	Persistent   bool   `fig:"persistent"`
	NonAnonymous bool   `fig:"non_anonymous" default:"true"`
	Moderated    bool   `fig:"moderated"`
	MaxOccupants int    `fig:"max_occupants"`
	Password     string `fig:"password"`
}

// Room represents a multi-user chat room.
type Room struct {
	RoomJID      *jid.JID
	Config       RoomConfig
	Occupants    map[string]*Occupant // keyed by nick
	Affiliations map[string]Affiliation
}

// NewRoom returns a new empty room.
func NewRoom(roomJID *jid.JID, cfg RoomConfig) *Room {
	return &Room{
		RoomJID:      roomJID.ToBareJID(),
		Config:       cfg,
		Occupants:    make(map[string]*Occupant),
		Affiliations: make(map[string]Affiliation),
	}
}

// OccupantsCount returns current number of room occupants.
func (r *Room) OccupantsCount() int {
	return len(r.Occupants)
}

// IsFull tells whether the room reached its occupants limit.
func (r *Room) IsFull() bool {
	return r.Config.MaxOccupants > 0 && len(r.Occupants) >= r.Config.MaxOccupants
}

// Occupant returns the occupant registered under nick.
func (r *Room) Occupant(nick string) *Occupant {
	return r.Occupants[nick]
}

// OccupantsByBareJID returns all occupants whose real bare JID matches j.
func (r *Room) OccupantsByBareJID(j *jid.JID) []*Occupant {
	bare := j.ToBareJID().String()

	var ret []*Occupant
	for _, occ := range r.SortedOccupants() {
		if occ.BareJID().String() == bare {
			ret = append(ret, occ)
		}
	}
	return ret
}

// SortedOccupants returns room occupants sorted by nick.
func (r *Room) SortedOccupants() []*Occupant {
	ret := make([]*Occupant, 0, len(r.Occupants))
	for _, occ := range r.Occupants {
		ret = append(ret, occ)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Nick() < ret[j].Nick() })
	return ret
}

// AddOccupant registers occ into the room.
func (r *Room) AddOccupant(occ *Occupant) {
	r.Occupants[occ.Nick()] = occ
}

// RemoveOccupant removes the occupant registered under nick.
func (r *Room) RemoveOccupant(nick string) *Occupant {
	occ := r.Occupants[nick]
	delete(r.Occupants, nick)
	return occ
}

// GetAffiliation returns the affiliation held by bare JID j.
func (r *Room) GetAffiliation(j *jid.JID) Affiliation {
	aff, ok := r.Affiliations[j.ToBareJID().String()]
	if !ok {
		return NoAffiliation
	}
	return aff
}

// SetAffiliation sets bare JID j affiliation.
func (r *Room) SetAffiliation(j *jid.JID, aff Affiliation) {
	k := j.ToBareJID().String()
	if aff == NoAffiliation {
		delete(r.Affiliations, k)
		return
	}
	r.Affiliations[k] = aff
}

// AffiliatedJIDs returns all bare JIDs holding affiliation aff, sorted.
func (r *Room) AffiliatedJIDs(aff Affiliation) []string {
	var ret []string
	for k, a := range r.Affiliations {
		if a == aff {
			ret = append(ret, k)
		}
	}
	sort.Strings(ret)
	return ret
}
