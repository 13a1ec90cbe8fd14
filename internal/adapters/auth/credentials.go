package auth

import (
	"fmt"
	"strings"

	"societyportal/internal/domain"
)

// demoAccount is a source-default account. The plaintext password is hashed
// at construction; only the hash is held at runtime.
type demoAccount struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// DemoAccounts are the society's demonstration logins. They are
// configuration, not domain data: on restart the list is rebuilt from here.
var DemoAccounts = []demoAccount{
	{ID: "1", Email: "admin@cssh.us", Password: "admin123", FirstName: "Admin", LastName: "User"},
	{ID: "2", Email: "member@cssh.us", Password: "member123", FirstName: "Member", LastName: "User"},
}

type staticCredentialProvider struct {
	byEmail map[string]*domain.Credential
	order   []*domain.Credential
}

// NewStaticCredentialProvider builds a CredentialProvider from the given
// accounts, hashing each password with hasher. Emails are matched
// case-insensitively.
func NewStaticCredentialProvider(hasher domain.PasswordHasher, accounts []demoAccount) (domain.CredentialProvider, error) {
	p := &staticCredentialProvider{byEmail: make(map[string]*domain.Credential, len(accounts))}
	for _, a := range accounts {
		salt, err := hasher.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("failed to build credential for %s: %w", a.Email, err)
		}
		hash, err := hasher.Hash(salt, a.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to build credential for %s: %w", a.Email, err)
		}
		cred := &domain.Credential{
			ID:           a.ID,
			Email:        strings.ToLower(a.Email),
			PasswordHash: hash,
			Salt:         salt,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
		}
		p.byEmail[cred.Email] = cred
		p.order = append(p.order, cred)
	}
	return p, nil
}

func (p *staticCredentialProvider) Lookup(email string) (*domain.Credential, error) {
	cred, ok := p.byEmail[strings.TrimSpace(strings.ToLower(email))]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return cred, nil
}

func (p *staticCredentialProvider) All() []*domain.Credential {
	return p.order
}
