// Package vehicles manages the brand/model reference data. The API mounts it
// at /products, which is what the front office historically calls it.
package vehicles

import "time"

// Vehicle is one brand/model entry.
type Vehicle struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Option is the flattened entry served to dropdowns: brand name plus model,
// active entries only.
type Option struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}
