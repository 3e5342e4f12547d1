package model

// Category represents an expense category shared by all tenants.
type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	Color      string `json:"color,omitempty"`
	IsBusiness bool   `json:"is_business"`
	IsActive   bool   `json:"is_active"`
}
