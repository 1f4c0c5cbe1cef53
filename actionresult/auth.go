package actionresult

import (
	"net/http"
	"time"

	"github.com/resultassert/resultassert/framework/opt"
)

const (
	issuedItem  = ".issued"
	expiresItem = ".expires"
)

// AuthenticationProperties carries state about an authentication session.
//
// The issued and expiration timestamps are kept in Items as HTTP-date text, the same way they
// travel in cookies and tokens, so they only have second precision.
type AuthenticationProperties struct {
	Items        map[string]string
	RedirectURI  string
	IsPersistent bool
	AllowRefresh opt.Maybe[bool]
}

// NewAuthenticationProperties creates properties with the given items, which may be nil.
func NewAuthenticationProperties(items map[string]string) *AuthenticationProperties {
	p := &AuthenticationProperties{Items: make(map[string]string, len(items))}
	for k, v := range items {
		p.Items[k] = v
	}
	return p
}

func (p *AuthenticationProperties) IssuedUTC() opt.Maybe[time.Time] {
	return p.timeItem(issuedItem)
}

func (p *AuthenticationProperties) SetIssuedUTC(t opt.Maybe[time.Time]) {
	p.setTimeItem(issuedItem, t)
}

func (p *AuthenticationProperties) ExpiresUTC() opt.Maybe[time.Time] {
	return p.timeItem(expiresItem)
}

func (p *AuthenticationProperties) SetExpiresUTC(t opt.Maybe[time.Time]) {
	p.setTimeItem(expiresItem, t)
}

// Item returns the value of an item and whether it was present. It is safe to call on nil.
func (p *AuthenticationProperties) Item(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	value, ok := p.Items[key]
	return value, ok
}

func (p *AuthenticationProperties) timeItem(key string) opt.Maybe[time.Time] {
	s, ok := p.Item(key)
	if !ok {
		return opt.None[time.Time]()
	}
	t, err := http.ParseTime(s)
	if err != nil {
		return opt.None[time.Time]()
	}
	return opt.Some(t.UTC())
}

func (p *AuthenticationProperties) setTimeItem(key string, t opt.Maybe[time.Time]) {
	if !t.IsDefined() {
		delete(p.Items, key)
		return
	}
	if p.Items == nil {
		p.Items = make(map[string]string)
	}
	p.Items[key] = t.Value().UTC().Format(http.TimeFormat)
}

// Claim is a statement about a user, such as their email address or role.
type Claim struct {
	Type  string
	Value string
}

// Principal is an authenticated user. Principals are compared by identity, not by value.
type Principal struct {
	AuthenticationType string
	Name               string
	Claims             []Claim
}

// FindClaim returns the value of the first claim of the given type.
func (p *Principal) FindClaim(claimType string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, c := range p.Claims {
		if c.Type == claimType {
			return c.Value, true
		}
	}
	return "", false
}
