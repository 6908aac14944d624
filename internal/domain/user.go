package domain

import "time"

// Provider records where an account's credentials originate.
type Provider string

const (
	// ProviderLocal accounts registered directly with an email and password.
	ProviderLocal Provider = "LOCAL"

	// ProviderGitHub accounts created through the GitHub OAuth handshake.
	// Their credential slot holds a hash of the provider access token and is
	// never compared during login.
	ProviderGitHub Provider = "GITHUB"
)

type User struct {
	ID           int64
	Email        string // unique across all providers
	Name         string
	PasswordHash string // argon2id encoded
	Provider     Provider
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
