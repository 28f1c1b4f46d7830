package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ArtytL/loh2-site/internal/domain"
	"github.com/ArtytL/loh2-site/pkg/httpclient"
)

// WebhookNotifier POSTs the order plus a rendered summary to a configured
// endpoint, so the receiver can either reformat the raw data or use the
// summary as-is.
type WebhookNotifier struct {
	url string
}

func CreateWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{url: url}
}

func (n *WebhookNotifier) OrderCreated(ctx context.Context, order domain.Order) error {
	payload := struct {
		domain.Order
		Summary string `json:"summary"`
	}{Order: order, Summary: BuildOrderSummary(order)}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling order notification: %v", err)
	}

	statusCode, _, err := httpclient.SendRequest(httpclient.HttpRequest{
		URL:    n.url,
		Method: "POST",
		Body:   body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		return fmt.Errorf("error forwarding order notification: %v", err)
	}
	if statusCode < 200 || statusCode > 299 {
		return fmt.Errorf("order webhook returned non-2xx status: %d", statusCode)
	}

	return nil
}
