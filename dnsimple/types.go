package dnsimple

import (
	"time"
)

// User is the user behind a user-level token
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Account is a DNSimple account
type Account struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PlanIdentifier string    `json:"plan_identifier"`
	Reseller       bool      `json:"reseller"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WhoamiData identifies the credentials in use. Exactly one of User and
// Account is set, depending on the kind of token.
type WhoamiData struct {
	User    *User    `json:"user"`
	Account *Account `json:"account"`
}

// Domain is a domain in an account
type Domain struct {
	ID           int64      `json:"id"`
	AccountID    int64      `json:"account_id"`
	RegistrantID *int64     `json:"registrant_id"`
	Name         string     `json:"name"`
	UnicodeName  string     `json:"unicode_name"`
	State        string     `json:"state"`
	AutoRenew    bool       `json:"auto_renew"`
	PrivateWhois bool       `json:"private_whois"`
	ExpiresAt    *time.Time `json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ExpiresOn returns the expiration date as YYYY-MM-DD, or "" for domains
// that do not expire.
//
// Deprecated: use ExpiresAt.
func (d Domain) ExpiresOn() string {
	if d.ExpiresAt == nil {
		return ""
	}
	return d.ExpiresAt.UTC().Format(time.DateOnly)
}

// DomainAttributes is the payload for creating a domain
type DomainAttributes struct {
	Name string `json:"name"`
}

// DNSSEC is the DNSSEC status of a domain
type DNSSEC struct {
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DelegationSignerRecord is a DS record published at the registry
type DelegationSignerRecord struct {
	ID         int64     `json:"id"`
	DomainID   int64     `json:"domain_id"`
	Algorithm  string    `json:"algorithm"`
	Digest     string    `json:"digest"`
	DigestType string    `json:"digest_type"`
	Keytag     string    `json:"keytag"`
	PublicKey  string    `json:"public_key"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Zone is a DNS zone
type Zone struct {
	ID                int64      `json:"id"`
	AccountID         int64      `json:"account_id"`
	Name              string     `json:"name"`
	Reverse           bool       `json:"reverse"`
	Secondary         bool       `json:"secondary"`
	Active            bool       `json:"active"`
	LastTransferredAt *time.Time `json:"last_transferred_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ZoneRecord is a record in a zone
type ZoneRecord struct {
	ID           int64     `json:"id"`
	ZoneID       string    `json:"zone_id"`
	ParentID     *int64    `json:"parent_id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	TTL          int       `json:"ttl"`
	Priority     int       `json:"priority"`
	Type         string    `json:"type"`
	Regions      []string  `json:"regions"`
	SystemRecord bool      `json:"system_record"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ZoneRecordAttributes is the payload for creating or updating a record.
// Name is a pointer so that the apex ("") can be sent explicitly.
type ZoneRecordAttributes struct {
	Name     *string  `json:"name,omitempty"`
	Type     string   `json:"type,omitempty"`
	Content  string   `json:"content,omitempty"`
	TTL      int      `json:"ttl,omitempty"`
	Priority int      `json:"priority,omitempty"`
	Regions  []string `json:"regions,omitempty"`
}

// Webhook is an account webhook
type Webhook struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}
