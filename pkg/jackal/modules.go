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

package jackal

import (
	"github.com/jackal-xmpp/allowners/pkg/module"
	"github.com/jackal-xmpp/allowners/pkg/module/allowners"
)

var defaultModules = []string{
	allowners.ModuleName,
}

var modFns = map[string]func(j *Jackal, cfg *ModulesConfig) module.Module{
	allowners.ModuleName: func(j *Jackal, cfg *ModulesConfig) module.Module {
		j.allOwners = allowners.New(
			cfg.AllOwners,
			j.muc,
			j.router,
			j.hosts,
			j.localRouter,
			j.hk,
			j.logger,
		)
		return j.allOwners
	},
}
