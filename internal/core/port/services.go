package port

import (
	"context"
	"time"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

// Extractor turns one raw email into an order. It never panics:
// every failure, expected or not, comes back as an error and the
// caller decides whether to log it. emailDate may be nil.
type Extractor interface {
	ExtractOrder(subject, sender, body string, emailDate *time.Time) (*domain.Order, error)
}

type ImportService interface {
	// Run performs an incremental import. With force=true the
	// watermark is ignored and every archive message is reprocessed.
	Run(ctx context.Context, source MailboxSource, force bool) (domain.ImportSummary, error)

	// Ingest imports the full archive without watermark bookkeeping,
	// upserting every extracted order.
	Ingest(ctx context.Context, source MailboxSource, verbose bool) (domain.ImportSummary, error)
}
