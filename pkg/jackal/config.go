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
	"path/filepath"

	"github.com/jackal-xmpp/allowners/pkg/auth/token"
	"github.com/jackal-xmpp/allowners/pkg/host"
	"github.com/jackal-xmpp/allowners/pkg/module/allowners"
	"github.com/jackal-xmpp/allowners/pkg/muc"
	"github.com/kkyr/fig"
)

// LoggerConfig contains logger configuration.
type LoggerConfig struct {
	Level  string `fig:"level" default:"info"`
	Format string `fig:"format" default:"logfmt"`
}

// ModulesConfig contains modules configuration.
type ModulesConfig struct {
	// Enabled defines total set of enabled modules
	Enabled []string `fig:"enabled"`

	// AllOwners automatic owner promotion
	AllOwners allowners.Config `fig:"allowners"`
}

// Config contains the server configuration.
type Config struct {
	Logger LoggerConfig `fig:"logger"`

	HTTPPort int `fig:"http_port" default:"6060"`

	Hosts host.Configs `fig:"hosts"`
	Token token.Config `fig:"token"`
	MUC   muc.Config   `fig:"muc"`

	Modules ModulesConfig `fig:"modules"`
}

func loadConfig(configFile string) (*Config, error) {
	var cfg Config
	file := filepath.Base(configFile)
	dir := filepath.Dir(configFile)

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dir))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
