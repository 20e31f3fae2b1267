package dnsimple

import (
	"context"
)

// IdentityService reports who the credentials belong to
type IdentityService struct {
	service
}

// Whoami returns the user or account of the current credentials
func (s *IdentityService) Whoami(ctx context.Context) (*SimpleResponse[WhoamiData], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath("/whoami"))
	if err != nil {
		return nil, err
	}
	return DecodeSimple[WhoamiData](resp)
}

// AccountsService lists the accounts a user token can access
type AccountsService struct {
	service
}

// List returns every account the user has access to
func (s *AccountsService) List(ctx context.Context) (*ListResponse[Account], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath("/accounts"))
	if err != nil {
		return nil, err
	}
	return DecodeList[Account](resp)
}
