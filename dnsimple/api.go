package dnsimple

import (
	"context"
	"net/http"
)

// DomainsAPI defines the domain operations
type DomainsAPI interface {
	List(ctx context.Context, account string, opts *DomainListOptions) (*PaginatedResponse[Domain], error)
	Get(ctx context.Context, account, domain string) (*SimpleResponse[Domain], error)
	Create(ctx context.Context, account string, attrs DomainAttributes) (*SimpleResponse[Domain], error)
	Delete(ctx context.Context, account, domain string) (*EmptyResponse, error)

	// DNSSEC
	GetDNSSEC(ctx context.Context, account, domain string) (*SimpleResponse[DNSSEC], error)
	EnableDNSSEC(ctx context.Context, account, domain string) (*SimpleResponse[DNSSEC], error)
	DisableDNSSEC(ctx context.Context, account, domain string) (*EmptyResponse, error)
	ListDSRecords(ctx context.Context, account, domain string, opts *DSRecordListOptions) (*PaginatedResponse[DelegationSignerRecord], error)
}

// ZonesAPI defines the zone and zone record operations
type ZonesAPI interface {
	List(ctx context.Context, account string, opts *ZoneListOptions) (*PaginatedResponse[Zone], error)
	Get(ctx context.Context, account, zone string) (*SimpleResponse[Zone], error)
	ActivateDNS(ctx context.Context, account, zone string) (*SimpleOrEmptyResponse[Zone], error)

	ListRecords(ctx context.Context, account, zone string, opts *ZoneRecordListOptions) (*PaginatedResponse[ZoneRecord], error)
	GetRecord(ctx context.Context, account, zone string, recordID int64) (*SimpleResponse[ZoneRecord], error)
	CreateRecord(ctx context.Context, account, zone string, attrs ZoneRecordAttributes) (*SimpleResponse[ZoneRecord], error)
	UpdateRecord(ctx context.Context, account, zone string, recordID int64, attrs ZoneRecordAttributes) (*SimpleResponse[ZoneRecord], error)
	DeleteRecord(ctx context.Context, account, zone string, recordID int64) (*EmptyResponse, error)
}

// WebhooksAPI defines the webhook operations
type WebhooksAPI interface {
	List(ctx context.Context, account string) (*ListResponse[Webhook], error)
	Create(ctx context.Context, account, url string) (*SimpleResponse[Webhook], error)
	Delete(ctx context.Context, account string, webhookID int64) (*EmptyResponse, error)
}

var (
	_ DomainsAPI  = (*DomainsService)(nil)
	_ ZonesAPI    = (*ZonesService)(nil)
	_ WebhooksAPI = (*WebhooksService)(nil)
	_ Doer        = (*http.Client)(nil)
)
