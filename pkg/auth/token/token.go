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

package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	c2smodel "github.com/jackal-xmpp/allowners/pkg/model/c2s"
)

// ErrInvalidToken is returned when a session token cannot be verified.
var ErrInvalidToken = errors.New("token: invalid session token")

// Config contains session token verification parameters.
type Config struct {
	Secret   string        `fig:"secret"`
	Issuer   string        `fig:"issuer"`
	Audience string        `fig:"audience"`
	Leeway   time.Duration `fig:"leeway" default:"30s"`
}

// Verifier verifies HS256 signed session tokens.
type Verifier struct {
	cfg Config
	now func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Room string `json:"room"`
}

// NewVerifier returns a new initialized Verifier instance.
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{cfg: cfg, now: time.Now}
}

// IsEnabled tells whether token verification has been configured.
func (v *Verifier) IsEnabled() bool {
	return len(v.cfg.Secret) > 0
}

// Verify checks tkn signature and registered claims, and returns the session claims it carries.
// The subject claim is interpreted as the claimed subdomain.
func (v *Verifier) Verify(tkn string) (*c2smodel.SessionClaims, error) {
	tkn = strings.TrimSpace(tkn)
	if len(tkn) == 0 || !v.IsEnabled() {
		return nil, ErrInvalidToken
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.cfg.Leeway),
		jwt.WithTimeFunc(v.now),
	}
	if len(v.cfg.Issuer) > 0 {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}
	if len(v.cfg.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}
	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(tkn, &parsed, func(_ *jwt.Token) (interface{}, error) {
		return []byte(v.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &c2smodel.SessionClaims{
		Token:     tkn,
		Room:      parsed.Room,
		Subdomain: parsed.Subject,
	}, nil
}

// Sign issues a new HS256 session token for room and subdomain valid during ttl.
func (v *Verifier) Sign(room, subdomain string, ttl time.Duration) (string, error) {
	if !v.IsEnabled() {
		return "", ErrInvalidToken
	}
	now := v.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.cfg.Issuer,
			Subject:   subdomain,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Room: room,
	}
	if len(v.cfg.Audience) > 0 {
		claims.Audience = jwt.ClaimStrings{v.cfg.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(v.cfg.Secret))
}
