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

package c2smodel

// AnyRoom is the room claim value matching every room.
const AnyRoom = "*"

// SessionClaims contains the verified claims bound to a C2S session.
type SessionClaims struct {
	// Token is the raw verified authentication token.
	Token string

	// Room is the claimed room name.
	Room string

	// Subdomain is the claimed subdomain (tenant). Empty means none.
	Subdomain string
}

// HasToken tells whether the session carries a verified token.
func (c *SessionClaims) HasToken() bool {
	return c != nil && len(c.Token) > 0
}

// MatchesRoom tells whether the claimed room allows joining roomName.
func (c *SessionClaims) MatchesRoom(roomName string) bool {
	if c == nil {
		return false
	}
	return c.Room == AnyRoom || c.Room == roomName
}
