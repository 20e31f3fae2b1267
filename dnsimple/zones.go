package dnsimple

import (
	"context"
	"net/http"
	"strconv"
)

// ZonesService manages DNS zones and their records
type ZonesService struct {
	service
}

func zonePath(account, zone string, rest ...string) string {
	return resourcePath(append([]string{account, "zones", zone}, rest...)...)
}

// List returns one page of the account's zones
func (s *ZonesService) List(ctx context.Context, account string, opts *ZoneListOptions) (*PaginatedResponse[Zone], error) {
	b := s.buildRequestForPath(resourcePath(account, "zones"))
	if opts != nil {
		addListOptionsToRequest(&opts.ListOptions, b)
	}

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodePaginated[Zone](resp)
}

// Get returns a zone by name
func (s *ZonesService) Get(ctx context.Context, account, zone string) (*SimpleResponse[Zone], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath(zonePath(account, zone)))
	if err != nil {
		return nil, err
	}
	return DecodeSimple[Zone](resp)
}

// ActivateDNS activates DNS resolution for a zone. IsEmpty is set when the
// zone was already active and the server answered with no content.
func (s *ZonesService) ActivateDNS(ctx context.Context, account, zone string) (*SimpleOrEmptyResponse[Zone], error) {
	b := s.buildRequestForPath(zonePath(account, zone, "activation")).SetMethod(http.MethodPut)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeSimpleOrEmpty[Zone](resp)
}

// ListRecords returns one page of the zone's records
func (s *ZonesService) ListRecords(ctx context.Context, account, zone string, opts *ZoneRecordListOptions) (*PaginatedResponse[ZoneRecord], error) {
	b := s.buildRequestForPath(zonePath(account, zone, "records"))
	if opts != nil {
		addListOptionsToRequest(&opts.ListOptions, b)
	}

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodePaginated[ZoneRecord](resp)
}

// GetRecord returns a single record
func (s *ZonesService) GetRecord(ctx context.Context, account, zone string, recordID int64) (*SimpleResponse[ZoneRecord], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath(zonePath(account, zone, "records", strconv.FormatInt(recordID, 10))))
	if err != nil {
		return nil, err
	}
	return DecodeSimple[ZoneRecord](resp)
}

// CreateRecord adds a record to the zone
func (s *ZonesService) CreateRecord(ctx context.Context, account, zone string, attrs ZoneRecordAttributes) (*SimpleResponse[ZoneRecord], error) {
	b := s.buildRequestForPath(zonePath(account, zone, "records")).
		SetMethod(http.MethodPost).
		AddJSONPayload(attrs)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeSimple[ZoneRecord](resp)
}

// UpdateRecord changes the given attributes of a record
func (s *ZonesService) UpdateRecord(ctx context.Context, account, zone string, recordID int64, attrs ZoneRecordAttributes) (*SimpleResponse[ZoneRecord], error) {
	b := s.buildRequestForPath(zonePath(account, zone, "records", strconv.FormatInt(recordID, 10))).
		SetMethod(http.MethodPatch).
		AddJSONPayload(attrs)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeSimple[ZoneRecord](resp)
}

// DeleteRecord removes a record from the zone
func (s *ZonesService) DeleteRecord(ctx context.Context, account, zone string, recordID int64) (*EmptyResponse, error) {
	b := s.buildRequestForPath(zonePath(account, zone, "records", strconv.FormatInt(recordID, 10))).
		SetMethod(http.MethodDelete)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeEmpty(resp)
}
