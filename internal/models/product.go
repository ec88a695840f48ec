package models

// Product is a catalog listing. The JSON keys match the persisted blob
// format of the reference application, including the French "vendeurs" key
// for the seller field.
type Product struct {
	// ID is immutable after creation: a timestamp-derived string with a
	// sequence suffix when two creations land in the same millisecond.
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Seller      string  `json:"vendeurs"`
	// Image is an opaque URI: local file, data URI, or http(s) URL.
	Image    string `json:"image"`
	IsActive bool   `json:"isActive"`

	// Ownership stamps, taken from the session at creation time. May be
	// empty for seeded products or listings created while unauthenticated.
	CreatedBy string `json:"createdBy,omitempty"`
	UserID    string `json:"userId,omitempty"`

	// RFC 3339 timestamps.
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
