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

import "fmt"

// Affiliation represents a long-lived room affiliation.
type Affiliation string

const (
	// Owner affiliation.
	Owner Affiliation = "owner"

	// Admin affiliation.
	Admin Affiliation = "admin"

	// Member affiliation.
	Member Affiliation = "member"

	// Outcast affiliation.
	Outcast Affiliation = "outcast"

	// NoAffiliation represents the absence of affiliation.
	NoAffiliation Affiliation = "none"
)

// ParseAffiliation parses an affiliation attribute value.
func ParseAffiliation(s string) (Affiliation, error) {
	switch a := Affiliation(s); a {
	case Owner, Admin, Member, Outcast, NoAffiliation:
		return a, nil
	}
	return "", fmt.Errorf("mucmodel: unsupported affiliation: %s", s)
}

// String satisfies fmt.Stringer interface.
func (a Affiliation) String() string { return string(a) }

// IsPrivileged tells whether a grants room administration rights.
func (a Affiliation) IsPrivileged() bool {
	return a == Owner || a == Admin
}

// rank orders affiliations from outcast to owner.
func (a Affiliation) rank() int {
	switch a {
	case Owner:
		return 4
	case Admin:
		return 3
	case Member:
		return 2
	case NoAffiliation:
		return 1
	}
	return 0
}

// IsHigherThan tells whether a ranks above b.
func (a Affiliation) IsHigherThan(b Affiliation) bool {
	return a.rank() > b.rank()
}

// Role represents a session scoped room role.
type Role string

const (
	// Moderator role.
	Moderator Role = "moderator"

	// Participant role.
	Participant Role = "participant"

	// Visitor role.
	Visitor Role = "visitor"

	// NoRole represents the absence of role.
	NoRole Role = "none"
)

// String satisfies fmt.Stringer interface.
func (r Role) String() string { return string(r) }

// DefaultRole returns the role an occupant holding affiliation a gets on join.
func DefaultRole(a Affiliation, moderated bool) Role {
	switch a {
	case Owner, Admin:
		return Moderator
	case Outcast:
		return NoRole
	case Member:
		return Participant
	}
	if moderated {
		return Visitor
	}
	return Participant
}
