package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// rule is a single named pattern attempt for one field. Rules for a
// field are tried in declared order and the first usable match wins,
// so a new template variant is supported by appending a rule, never
// by editing an existing one.
type rule struct {
	name string
	re   *regexp.Regexp
}

func (r rule) attempt(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

var (
	orderIDRules = []rule{
		{name: "order-id-label", re: regexp.MustCompile(`(?i)ORDER\s+ID:?\s*#?([A-Z0-9]{5,})`)},
	}
	orderIDSubjectRule = rule{name: "order-hash-subject", re: regexp.MustCompile(`(?i)order\s+#?([A-Z0-9]+)`)}

	restaurantSubjectProPlusRule = rule{name: "pro-plus-subject", re: regexp.MustCompile(`(?i)pro\s+plus\s+order\s+from\s+(.+)$`)}
	restaurantBodyRule           = rule{name: "thank-you-body", re: regexp.MustCompile(`(?i)(?:Thank you for ordering (?:from)?|from)\s+([A-Za-z0-9\s&\-,.']+?)(?:\s+ORDER|\s+Delivered|$)`)}
	restaurantSubjectTailRule    = rule{name: "from-subject-tail", re: regexp.MustCompile(`(?i)from\s+([A-Za-z0-9\s&\-,.'"]+)$`)}
	restaurantLabelRule          = rule{name: "restaurant-label", re: regexp.MustCompile(`(?i)Restaurant\s*:?\s+([A-Za-z0-9\s&\-,.']+?)(?:\s+ORDER|\s+Delivered|\s+Total|\s+Grand|$)`)}

	// Pro Plus templates say "Paid ₹..."; older templates label the
	// total explicitly. Paid takes precedence.
	totalAmountRules = []rule{
		{name: "paid", re: regexp.MustCompile(`(?i)Paid[\s:]*₹\s*([\d,]+(?:\.\d{1,2})?)`)},
		{name: "total", re: regexp.MustCompile(`(?i)(?:Total\s+(?:paid|amount|bill)?|Grand\s+Total|Total\s+Amount)[\s\w\-:]*?₹\s*([\d,]+(?:\.\d{1,2})?)`)},
	}

	deliveryFeeRules = []rule{
		{name: "delivery-charges", re: regexp.MustCompile(`(?i)(?:Delivery\s+(?:Charges|Fee|Charge))[\s\w\-:]*?₹\s*([\d,]+\.?\d*)`)},
	}

	discountRules = []rule{
		{name: "discount-promo", re: regexp.MustCompile(`(?i)(?:Discount|Promo)[\s\w\-:]*?₹\s*([\d,]+\.?\d*)`)},
	}

	leadingPunctRe = regexp.MustCompile(`^[\-:\s]+`)
)

// extractOrderID looks for the order identifier in the subject, then
// the body, then falls back to a looser "order #..." subject pattern.
func extractOrderID(subject, body string) (string, bool) {
	for _, r := range orderIDRules {
		for _, probe := range []string{subject, body} {
			if v, ok := r.attempt(probe); ok {
				return v, true
			}
		}
	}
	return orderIDSubjectRule.attempt(subject)
}

// extractRestaurant tries the Pro Plus subject form, the "thank you
// for ordering" body form, the tail of the subject, then a labeled
// "Restaurant:" body form. A candidate outside the length bounds is
// treated as a non-match so the next rule still gets a chance.
func extractRestaurant(body, subject string) (string, bool) {
	if v, ok := restaurantSubjectProPlusRule.attempt(subject); ok {
		if name, ok := cleanRestaurantName(v); ok {
			return name, true
		}
	}
	if v, ok := restaurantBodyRule.attempt(body); ok {
		if name, ok := cleanRestaurantName(v); ok {
			return name, true
		}
	}
	if v, ok := restaurantSubjectTailRule.attempt(subject); ok {
		if name, ok := cleanRestaurantName(v); ok {
			return name, true
		}
	}
	if v, ok := restaurantLabelRule.attempt(body); ok {
		if name, ok := cleanRestaurantName(v); ok {
			return name, true
		}
	}
	return "", false
}

func cleanRestaurantName(raw string) (string, bool) {
	name := leadingPunctRe.ReplaceAllString(raw, "")
	name = whitespaceRe.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n <= 2 || n >= 120 {
		return "", false
	}
	return name, true
}

// extractTotalAmount returns the order total. A matched amount that
// does not parse numerically fails that rule, not the extraction.
func extractTotalAmount(body string) (decimal.Decimal, bool) {
	return firstAmount(totalAmountRules, body)
}

// extractDeliveryFee returns the delivery fee, zero when absent.
func extractDeliveryFee(body string) decimal.Decimal {
	if v, ok := firstAmount(deliveryFeeRules, body); ok {
		return v
	}
	return decimal.Zero
}

// extractDiscount returns the discount, zero when absent.
func extractDiscount(body string) decimal.Decimal {
	if v, ok := firstAmount(discountRules, body); ok {
		return v
	}
	return decimal.Zero
}

func firstAmount(rules []rule, text string) (decimal.Decimal, bool) {
	for _, r := range rules {
		v, ok := r.attempt(text)
		if !ok {
			continue
		}
		amount, err := parseAmount(v)
		if err != nil {
			continue
		}
		return amount, true
	}
	return decimal.Zero, false
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	return decimal.NewFromString(s)
}
