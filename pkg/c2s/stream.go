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

package c2s

import (
	"context"
	"errors"
	"sort"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	c2smodel "github.com/jackal-xmpp/allowners/pkg/model/c2s"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// ErrStreamClosed is returned when sending over an already disconnected stream.
var ErrStreamClosed = errors.New("c2s: stream closed")

// FilterFunc transforms an outbound element.
// Returning nil drops the element.
type FilterFunc func(ctx context.Context, elem stravaganza.Element) stravaganza.Element

type filter struct {
	name string
	fn   FilterFunc
	p    hook.Priority
}

// Stream represents a bound local C2S stream.
type Stream struct {
	id      string
	jd      *jid.JID
	session session
	hk      *hook.Hooks
	logger  kitlog.Logger

	mu      sync.RWMutex
	claims  *c2smodel.SessionClaims
	filters []filter
	closed  bool
	doneCh  chan struct{}
}

// NewStream returns a new stream bound to jd full JID and backed by sess.
func NewStream(jd *jid.JID, sess session, claims *c2smodel.SessionClaims, hk *hook.Hooks, logger kitlog.Logger) *Stream {
	id := uuid.New().String()
	return &Stream{
		id:      id,
		jd:      jd,
		session: sess,
		claims:  claims,
		hk:      hk,
		logger:  kitlog.With(logger, "stm_id", id, "jid", jd.String()),
		doneCh:  make(chan struct{}),
	}
}

// ID returns stream identifier.
func (s *Stream) ID() string { return s.id }

// JID returns stream bound full JID.
func (s *Stream) JID() *jid.JID { return s.jd }

// Username returns stream bound username.
func (s *Stream) Username() string { return s.jd.Node() }

// Resource returns stream bound resource.
func (s *Stream) Resource() string { return s.jd.Resource() }

// Claims returns the session claims associated to the stream.
func (s *Stream) Claims() *c2smodel.SessionClaims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// SetClaims sets the session claims associated to the stream.
func (s *Stream) SetClaims(claims *c2smodel.SessionClaims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = claims
}

// AddFilter installs an outbound element filter.
// Filters with a higher priority are applied first. Filters sharing the same priority are
// applied in installation order.
func (s *Stream) AddFilter(name string, fn FilterFunc, priority hook.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filters := make([]filter, 0, len(s.filters)+1)
	filters = append(filters, s.filters...)
	filters = append(filters, filter{name: name, fn: fn, p: priority})
	sort.SliceStable(filters, func(i, j int) bool { return filters[i].p > filters[j].p })

	s.filters = filters
}

// RemoveFilter uninstalls the outbound filter registered under name.
func (s *Stream) RemoveFilter(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.filters {
		if f.name != name {
			continue
		}
		filters := make([]filter, 0, len(s.filters)-1)
		filters = append(filters, s.filters[:i]...)
		filters = append(filters, s.filters[i+1:]...)
		s.filters = filters
		return
	}
}

// FilterNames returns installed filter names in application order.
func (s *Stream) FilterNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.filters))
	for _, f := range s.filters {
		names = append(names, f.name)
	}
	return names
}

// SendElement applies the outbound filter chain to elem and writes the result over the stream session.
func (s *Stream) SendElement(ctx context.Context, elem stravaganza.Element) error {
	s.mu.RLock()
	filters := s.filters
	closed := s.closed
	s.mu.RUnlock()

	if closed {
		return ErrStreamClosed
	}
	for _, f := range filters {
		elem = f.fn(ctx, elem)
		if elem != nil {
			continue
		}
		reportFilteredElement(f.name)
		level.Debug(s.logger).Log("msg", "outbound element dropped", "filter", f.name)

		_, err := s.runHook(ctx, hook.C2SStreamElementFiltered, &hook.C2SStreamInfo{
			ID:  s.id,
			JID: s.jd,
		})
		return err
	}
	if err := s.session.Send(ctx, elem); err != nil {
		return err
	}
	reportOutgoingRequest(elem.Name(), elem.Attribute(stravaganza.Type))

	// run element sent hook
	_, err := s.runHook(ctx, hook.C2SStreamElementSent, &hook.C2SStreamInfo{
		ID:      s.id,
		JID:     s.jd,
		Element: elem,
	})
	return err
}

// Disconnect closes the stream session.
func (s *Stream) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.doneCh)
	s.mu.Unlock()

	return s.session.Close(ctx)
}

// Done returns a channel that is closed when the stream is disconnected.
func (s *Stream) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Stream) runHook(ctx context.Context, hookName string, inf *hook.C2SStreamInfo) (halt bool, err error) {
	return s.hk.Run(hookName, &hook.ExecutionContext{
		Info:    inf,
		Sender:  s,
		Context: ctx,
	})
}
