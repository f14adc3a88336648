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

package module

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
)

// Module represents generic module interface.
type Module interface {
	// Name returns specific module name.
	Name() string

	// Start starts module.
	Start(ctx context.Context) error

	// Stop stops module.
	Stop(ctx context.Context) error
}

// Modules is the global module hub.
type Modules struct {
	mods   []Module
	hk     *hook.Hooks
	logger kitlog.Logger
}

// NewModules returns a new initialized Modules instance.
func NewModules(mods []Module, hk *hook.Hooks, logger kitlog.Logger) *Modules {
	return &Modules{
		mods:   mods,
		hk:     hk,
		logger: logger,
	}
}

// Start starts modules.
func (m *Modules) Start(ctx context.Context) error {
	var modNames []string
	for _, mod := range m.mods {
		if err := mod.Start(ctx); err != nil {
			return err
		}
		modNames = append(modNames, mod.Name())
	}
	level.Info(m.logger).Log("msg", "started modules", "mods_count", len(m.mods))

	_, err := m.hk.Run(hook.ModulesStarted, &hook.ExecutionContext{
		Info: &hook.ModulesInfo{
			ModuleNames: modNames,
		},
		Sender:  m,
		Context: ctx,
	})
	return err
}

// Stop stops modules in reverse start order.
func (m *Modules) Stop(ctx context.Context) error {
	var modNames []string
	for i := len(m.mods) - 1; i >= 0; i-- {
		mod := m.mods[i]
		if err := mod.Stop(ctx); err != nil {
			return err
		}
		modNames = append(modNames, mod.Name())
	}
	level.Info(m.logger).Log("msg", "stopped modules", "mods_count", len(m.mods))

	_, err := m.hk.Run(hook.ModulesStopped, &hook.ExecutionContext{
		Info: &hook.ModulesInfo{
			ModuleNames: modNames,
		},
		Sender:  m,
		Context: ctx,
	})
	return err
}

// IsEnabled tells whether a specific module it's been registered.
func (m *Modules) IsEnabled(moduleName string) bool {
	for _, mod := range m.mods {
		if mod.Name() == moduleName {
			return true
		}
	}
	return false
}

// AllModules returns all configured modules.
func (m *Modules) AllModules() []Module {
	return m.mods
}
