package port

import (
	"context"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

// MailboxSource streams raw emails out of an archive in archive
// order, one pass only. Parse stops early if fn returns an error and
// propagates it.
type MailboxSource interface {
	Parse(ctx context.Context, fn func(domain.RawEmail) error) error
}
