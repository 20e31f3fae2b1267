package dnsimple

import (
	"context"
	"net/http"
	"strconv"
)

// WebhooksService manages account webhooks
type WebhooksService struct {
	service
}

// List returns every webhook of the account. The endpoint does not paginate.
func (s *WebhooksService) List(ctx context.Context, account string) (*ListResponse[Webhook], error) {
	resp, err := s.execute(ctx, s.buildRequestForPath(resourcePath(account, "webhooks")))
	if err != nil {
		return nil, err
	}
	return DecodeList[Webhook](resp)
}

// Create registers a webhook for url
func (s *WebhooksService) Create(ctx context.Context, account, url string) (*SimpleResponse[Webhook], error) {
	b := s.buildRequestForPath(resourcePath(account, "webhooks")).
		SetMethod(http.MethodPost).
		AddJSONPayload(struct {
			URL string `json:"url"`
		}{URL: url})

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeSimple[Webhook](resp)
}

// Delete removes a webhook
func (s *WebhooksService) Delete(ctx context.Context, account string, webhookID int64) (*EmptyResponse, error) {
	b := s.buildRequestForPath(resourcePath(account, "webhooks", strconv.FormatInt(webhookID, 10))).
		SetMethod(http.MethodDelete)

	resp, err := s.execute(ctx, b)
	if err != nil {
		return nil, err
	}
	return DecodeEmpty(resp)
}
