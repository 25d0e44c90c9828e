package models

import "time"

// SentimentReading is the crypto fear & greed index reading, with the previous
// cycle's value kept for delta display.
type SentimentReading struct {
	Value         int       `json:"value"`
	Label         string    `json:"label"`
	LabelKo       string    `json:"labelKo"`
	Timestamp     time.Time `json:"timestamp"`
	PreviousValue *int      `json:"previousValue,omitempty"`
	PreviousLabel string    `json:"previousLabel,omitempty"`
}
