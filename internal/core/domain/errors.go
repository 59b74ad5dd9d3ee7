package domain

import "errors"

// Extraction failure kinds. The import pipeline degrades all of them
// to "no order produced", but tests and logging can tell them apart
// with errors.Is. ErrNoOrderDate is the only one worth surfacing
// loudly: it means even the email header had no usable date.
var (
	ErrMissingOrderID     = errors.New("order id not found")
	ErrMissingRestaurant  = errors.New("restaurant name not found")
	ErrMissingTotalAmount = errors.New("total amount not found")
	ErrNoOrderDate        = errors.New("unable to determine order date")
)
