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

package host

import (
	"sort"
	"strings"
	"sync"

	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const defaultDomain = "localhost"

type hostEntry struct {
	admins map[string]struct{}
}

// Hosts type represents all local domains set.
type Hosts struct {
	mu          sync.RWMutex
	defaultHost string
	hosts       map[string]hostEntry
	confHosts   map[string]string
}

// Configs contains a set of host configurations.
type Configs []Config

// Config contains host configuration parameters.
type Config struct {
	Domain string   `fig:"domain"`
	Admins []string `fig:"admins"`
}

// NewHosts creates and initializes a Hosts instance.
func NewHosts(cfg Configs) *Hosts {
	hs := &Hosts{
		hosts:     make(map[string]hostEntry),
		confHosts: make(map[string]string),
	}
	if len(cfg) == 0 {
		hs.RegisterDefaultHost(defaultDomain, nil)
		return hs
	}
	for i, config := range cfg {
		if i == 0 {
			hs.RegisterDefaultHost(config.Domain, config.Admins)
		} else {
			hs.RegisterHost(config.Domain, config.Admins)
		}
	}
	return hs
}

// RegisterDefaultHost registers default host value along with its administrators.
func (hs *Hosts) RegisterDefaultHost(h string, admins []string) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.defaultHost = h
	hs.hosts[h] = newHostEntry(admins)
}

// RegisterHost registers a host value along with its administrators.
func (hs *Hosts) RegisterHost(h string, admins []string) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.hosts[h] = newHostEntry(admins)
}

// RegisterConferenceHost registers a MUC service domain served on behalf of parent local host.
func (hs *Hosts) RegisterConferenceHost(h, parent string) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.confHosts[h] = parent
}

// DefaultHostName returns default host name value.
func (hs *Hosts) DefaultHostName() string {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return hs.defaultHost
}

// IsLocalHost tells whether or not h value corresponds to local host.
func (hs *Hosts) IsLocalHost(h string) bool {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	_, ok := hs.hosts[h]
	return ok
}

// IsConferenceHost tells whether or not h value corresponds to a local MUC service domain.
func (hs *Hosts) IsConferenceHost(h string) bool {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	_, ok := hs.confHosts[h]
	return ok
}

// IsAdmin tells whether bare JID j is a server administrator of host h.
// Conference hosts delegate to the administrators of their parent host.
func (hs *Hosts) IsAdmin(j *jid.JID, h string) bool {
	if j == nil {
		return false
	}
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	if parent, ok := hs.confHosts[h]; ok {
		h = parent
	}
	entry, ok := hs.hosts[h]
	if !ok {
		return false
	}
	_, ok = entry.admins[j.ToBareJID().String()]
	return ok
}

// HostNames returns the list of all registered local hosts.
func (hs *Hosts) HostNames() []string {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	var ret []string
	for n := range hs.hosts {
		ret = append(ret, n)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

func newHostEntry(admins []string) hostEntry {
	e := hostEntry{admins: make(map[string]struct{}, len(admins))}
	for _, adm := range admins {
		e.admins[strings.ToLower(adm)] = struct{}{}
	}
	return e
}
