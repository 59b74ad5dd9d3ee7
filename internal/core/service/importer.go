package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/port"
)

const defaultWorkers = 4

// ImportService coordinates the import pipeline: mailbox source →
// admission filter → extraction → timezone normalisation → batch
// upsert → watermark advance. Concurrent runs against the same
// watermark store are not supported; callers serialise invocations.
type ImportService struct {
	storage   port.OrderStorage
	watermark port.WatermarkStore
	extractor port.Extractor
	provider  string
	workers   int
}

func NewImportService(
	storage port.OrderStorage,
	watermark port.WatermarkStore,
	extractor port.Extractor,
	provider string,
) *ImportService {
	return &ImportService{
		storage:   storage,
		watermark: watermark,
		extractor: extractor,
		provider:  strings.ToLower(provider),
		workers:   defaultWorkers,
	}
}

// LooksLikeProviderEmail is the cheap admission filter run before
// extraction. It is intentionally permissive: the provider name in
// the subject, the provider name in the sender, or "order" in the
// subject combined with the provider in the sender all pass.
func LooksLikeProviderEmail(subject, sender, provider string) bool {
	subject = strings.ToLower(subject)
	sender = strings.ToLower(sender)
	return strings.Contains(subject, provider) ||
		strings.Contains(sender, provider) ||
		(strings.Contains(subject, "order") && strings.Contains(sender, provider))
}

// normalizeToUTC converts a timestamp to UTC, first pinning
// zone-less times (offset zero with no zone name) to IST.
func normalizeToUTC(t time.Time) time.Time {
	if name, offset := t.Zone(); name == "" && offset == 0 {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
			t.Second(), t.Nanosecond(), domain.IST)
	}
	return t.UTC()
}

// Run performs an incremental import. Emails at or below the
// watermark are skipped unless force is set. The watermark advances
// to the newest committed order date, and only after the whole batch
// has persisted: a storage failure leaves it untouched, so the next
// run safely reprocesses.
func (s *ImportService) Run(ctx context.Context, source port.MailboxSource, force bool) (domain.ImportSummary, error) {
	logger := log.WithField("run_id", uuid.New())

	// The watermark is read even under force: force reprocesses
	// everything but must never move the watermark backwards.
	lastSync, synced := s.watermark.Read()

	jobs := make(chan domain.RawEmail, s.workers*4)
	results := make(chan *domain.Order, s.workers*4)

	var skipped atomic.Int64

	// Extraction is pure per email, so it fans out across workers.
	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for email := range jobs {
				order, err := s.extractor.ExtractOrder(email.Subject, email.Sender, email.Body, email.Date)
				if err != nil {
					if errors.Is(err, domain.ErrNoOrderDate) {
						logger.WithField("subject", email.Subject).Warn("No usable order date, even from the header")
					}
					skipped.Add(1)
					continue
				}
				results <- order
			}
		}()
	}

	// Orders are collected behind the worker join so the watermark
	// reflects every order the run actually commits.
	var orders []domain.Order
	collectDone := make(chan struct{})
	go func() {
		defer close(collectDone)
		for order := range results {
			order.OrderDate = normalizeToUTC(order.OrderDate)
			orders = append(orders, *order)
		}
	}()

	parseErr := source.Parse(ctx, func(email domain.RawEmail) error {
		if !LooksLikeProviderEmail(email.Subject, email.Sender, s.provider) {
			skipped.Add(1)
			return nil
		}
		if email.Date != nil {
			utc := normalizeToUTC(*email.Date)
			email.Date = &utc
			if !force && synced && !utc.After(lastSync) {
				skipped.Add(1)
				return nil
			}
		}
		select {
		case jobs <- email:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	<-collectDone

	if parseErr != nil {
		return domain.ImportSummary{}, fmt.Errorf("read mailbox: %w", parseErr)
	}

	summary := domain.ImportSummary{Skipped: int(skipped.Load())}
	if len(orders) == 0 {
		return summary, nil
	}

	// Incremental runs insert-only; force reprocesses and rewrites.
	stats, err := s.storage.BulkUpsert(ctx, orders, force)
	if err != nil {
		return domain.ImportSummary{}, fmt.Errorf("persist batch: %w", err)
	}
	summary.Inserted = stats.Inserted
	summary.Updated = stats.Updated
	summary.Skipped += stats.Skipped

	newest := lastSync
	for _, o := range orders {
		if o.OrderDate.After(newest) {
			newest = o.OrderDate
		}
	}
	if err := s.watermark.Write(newest); err != nil {
		return summary, fmt.Errorf("advance watermark: %w", err)
	}

	logger.WithFields(log.Fields{
		"inserted":  summary.Inserted,
		"updated":   summary.Updated,
		"skipped":   summary.Skipped,
		"watermark": newest,
	}).Info("Incremental import complete")

	return summary, nil
}

// Ingest imports the whole archive without watermark bookkeeping,
// upserting order by order. Used by the full `ingest` command.
func (s *ImportService) Ingest(ctx context.Context, source port.MailboxSource, verbose bool) (domain.ImportSummary, error) {
	var summary domain.ImportSummary

	err := source.Parse(ctx, func(email domain.RawEmail) error {
		if !LooksLikeProviderEmail(email.Subject, email.Sender, s.provider) {
			summary.Skipped++
			return nil
		}
		if email.Date != nil {
			utc := normalizeToUTC(*email.Date)
			email.Date = &utc
		}

		order, err := s.extractor.ExtractOrder(email.Subject, email.Sender, email.Body, email.Date)
		if err != nil {
			summary.Skipped++
			if verbose {
				log.WithError(err).Infof("[-] Failed to parse: %s", email.Subject)
			}
			return nil
		}
		order.OrderDate = normalizeToUTC(order.OrderDate)

		inserted, err := s.storage.UpsertOrder(ctx, *order, true)
		if err != nil {
			return fmt.Errorf("store order %s: %w", order.OrderID, err)
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
		if verbose {
			log.Infof("[+] %s: %s - %s", order.OrderID, order.RestaurantName, order.TotalAmount)
		}
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("read mailbox: %w", err)
	}

	return summary, nil
}
