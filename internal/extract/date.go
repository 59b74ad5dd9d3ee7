package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|` +
	`January|February|March|April|May|June|July|August|September|October|November|December`

var (
	// A date-bearing span is anchored by a label or a day-month token;
	// the 4-digit year and the time part are each optional, the layout
	// table decides what the captured span actually carries.
	detailedDateRe = regexp.MustCompile(`(?i)(?:Order|Ordered|Issued|[0-3]?\d\s+(?:` + monthNames + `))` +
		`[^\d]*?([0-3]?\d\s+(?:` + monthNames + `)(?:[^\d]*?\d{4})?(?:,?\s*\d{1,2}:\d{2}(?:\s*[AaPp][Mm])?)?)`)

	simpleDateRe = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*)`)

	meridiemRe = regexp.MustCompile(`(?i)\b[ap]m\b`)
)

// Known order-date formats, tried in order. Layouts without a year
// back-fill it from the email header date.
var dateLayouts = []struct {
	layout  string
	hasYear bool
}{
	{"2 Jan 2006, 3:04 PM", true},
	{"2 January 2006, 3:04 PM", true},
	{"2-1-2006, 15:04", true},
	{"2/1/2006, 15:04", true},
	{"2 Jan 2006", true},
	{"2 January 2006", true},
	{"2 Jan 2006, 15:04", true},
	{"2 January 2006, 15:04", true},
	{"2 Jan, 3:04 PM", false},
	{"2 January, 3:04 PM", false},
}

// extractOrderDate resolves the order date from the normalized text,
// falling back to the email header date. In-body timestamps carry no
// zone, so they are interpreted as IST. The returned error is
// domain.ErrNoOrderDate only when every fallback is exhausted.
func extractOrderDate(text string, emailDate *time.Time) (time.Time, error) {
	if m := detailedDateRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		// Go's 12-hour layouts only accept upper-case meridiems.
		candidate = meridiemRe.ReplaceAllStringFunc(candidate, strings.ToUpper)

		for _, f := range dateLayouts {
			parsed, err := time.ParseInLocation(f.layout, candidate, domain.IST)
			if err != nil {
				continue
			}
			if !f.hasYear {
				if emailDate == nil {
					continue
				}
				parsed = time.Date(emailDate.Year(), parsed.Month(), parsed.Day(),
					parsed.Hour(), parsed.Minute(), 0, 0, domain.IST)
			}
			return parsed, nil
		}
	}

	if m := simpleDateRe.FindStringSubmatch(text); m != nil && emailDate != nil {
		if parsed, err := time.ParseInLocation("2 Jan", m[1], domain.IST); err == nil {
			return time.Date(emailDate.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, domain.IST), nil
		}
	}

	if emailDate != nil {
		return *emailDate, nil
	}

	return time.Time{}, domain.ErrNoOrderDate
}
