package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
)

func TestExtractOrderDate(t *testing.T) {
	headerDate := time.Date(2021, time.March, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		text      string
		emailDate *time.Time
		expected  time.Time
	}{
		{
			name:      "full date with 12 hour time",
			text:      "Order placed on 12 March 2021, 7:45 PM from Biryani Blues",
			emailDate: &headerDate,
			expected:  time.Date(2021, time.March, 12, 19, 45, 0, 0, domain.IST),
		},
		{
			name:      "lower case meridiem",
			text:      "Ordered on 3 Jan 2022, 9:05 pm",
			emailDate: nil,
			expected:  time.Date(2022, time.January, 3, 21, 5, 0, 0, domain.IST),
		},
		{
			name:      "date without time",
			text:      "Order delivered 28 Feb 2020 enjoy your meal",
			emailDate: &headerDate,
			expected:  time.Date(2020, time.February, 28, 0, 0, 0, 0, domain.IST),
		},
		{
			name:      "yearless date borrows header year",
			text:      "Ordered 9 Mar, 8:30 PM",
			emailDate: &headerDate,
			expected:  time.Date(2021, time.March, 9, 20, 30, 0, 0, domain.IST),
		},
		{
			name:      "simple day month fallback",
			text:      "your 14 Feb order was delicious",
			emailDate: &headerDate,
			expected:  time.Date(2021, time.February, 14, 0, 0, 0, 0, domain.IST),
		},
		{
			name:      "header date last resort",
			text:      "no dates in this body at all",
			emailDate: &headerDate,
			expected:  headerDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractOrderDate(tt.text, tt.emailDate)
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s want %s", got, tt.expected)
		})
	}
}

func TestExtractOrderDateExhausted(t *testing.T) {
	_, err := extractOrderDate("no dates here", nil)
	assert.ErrorIs(t, err, domain.ErrNoOrderDate)
}

func TestExtractOrderDateYearlessWithoutHeader(t *testing.T) {
	// A yearless in-body date cannot be resolved without the header,
	// and with no other fallback the extraction must fail.
	_, err := extractOrderDate("Ordered 9 Mar, 8:30 PM", nil)
	assert.ErrorIs(t, err, domain.ErrNoOrderDate)
}
