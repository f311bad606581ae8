package entity

import "time"

// IdempotencyRecord stores the response of a processed mutating request
type IdempotencyRecord struct {
	Key          string    `json:"key"`
	Endpoint     string    `json:"endpoint"`
	ResponseCode int       `json:"responseCode"`
	ResponseBody string    `json:"responseBody"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// IsExpired checks if the record has expired
func (i *IdempotencyRecord) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
