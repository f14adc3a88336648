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

package muc

import (
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
)

// Config contains MUC service configuration parameters.
type Config struct {
	// Host is the conference domain served by the service.
	Host string `fig:"host" default:"conference.localhost"`

	// RoomDefaults contains the configuration applied to every newly created room.
	RoomDefaults mucmodel.RoomConfig `fig:"room_defaults"`
}
