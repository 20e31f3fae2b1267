package dnsimple

import (
	"context"
	"net/http"
)

// DomainsService manages the domains of an account and their DNSSEC setup
type DomainsService struct {
	service
}

func domainsPath(account string) string {
	return resourcePath(account, "domains")
}

func domainPath(account, domain string) string {
	return resourcePath(account, "domains", domain)
}

// List returns one page of the account's domains
func (s *DomainsService) List(ctx context.Context, account string, opts *DomainListOptions) (*PaginatedResponse[Domain], error) {
	b := s.buildRequestForPath(domainsPath(account))
	if opts != nil {
		addListOptionsToRequest(&opts.ListOptions, b)
	}

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodePaginated[Domain](resp)
}

// Get returns a domain by name or ID
func (s *DomainsService) Get(ctx context.Context, account, domain string) (*SimpleResponse[Domain], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath(domainPath(account, domain)))
	if err != nil {
		return nil, err
	}
	return DecodeSimple[Domain](resp)
}

// Create adds a domain to the account
func (s *DomainsService) Create(ctx context.Context, account string, attrs DomainAttributes) (*SimpleResponse[Domain], error) {
	b := s.buildRequestForPath(domainsPath(account)).
		SetMethod(http.MethodPost).
		AddJSONPayload(attrs)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeSimple[Domain](resp)
}

// Delete removes a domain from the account
func (s *DomainsService) Delete(ctx context.Context, account, domain string) (*EmptyResponse, error) {
	b := s.buildRequestForPath(domainPath(account, domain)).SetMethod(http.MethodDelete)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeEmpty(resp)
}

// GetDNSSEC returns the DNSSEC status of a domain
func (s *DomainsService) GetDNSSEC(ctx context.Context, account, domain string) (*SimpleResponse[DNSSEC], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath(resourcePath(account, "domains", domain, "dnssec")))
	if err != nil {
		return nil, err
	}
	return DecodeSimple[DNSSEC](resp)
}

// EnableDNSSEC turns on DNSSEC signing for a domain
func (s *DomainsService) EnableDNSSEC(ctx context.Context, account, domain string) (*SimpleResponse[DNSSEC], error) {
	b := s.buildRequestForPath(resourcePath(account, "domains", domain, "dnssec")).SetMethod(http.MethodPost)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeSimple[DNSSEC](resp)
}

// DisableDNSSEC turns off DNSSEC signing for a domain
func (s *DomainsService) DisableDNSSEC(ctx context.Context, account, domain string) (*EmptyResponse, error) {
	b := s.buildRequestForPath(resourcePath(account, "domains", domain, "dnssec")).SetMethod(http.MethodDelete)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeEmpty(resp)
}

// ListDSRecords returns one page of the domain's delegation signer records
func (s *DomainsService) ListDSRecords(ctx context.Context, account, domain string, opts *DSRecordListOptions) (*PaginatedResponse[DelegationSignerRecord], error) {
	b := s.buildRequestForPath(resourcePath(account, "domains", domain, "ds_records"))
	if opts != nil {
		addListOptionsToRequest(&opts.ListOptions, b)
	}

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodePaginated[DelegationSignerRecord](resp)
}
