package notification

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ArtytL/loh2-site/internal/domain"
)

// LogNotifier is the fallback when neither a webhook nor SMTP is configured.
type LogNotifier struct{}

func CreateLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) OrderCreated(ctx context.Context, order domain.Order) error {
	log.Info().Str("order_id", order.ID).Msg("no notification target configured\n" + BuildOrderSummary(order))
	return nil
}
