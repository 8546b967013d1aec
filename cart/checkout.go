package cart

import (
	"errors"
	"time"
)

// ErrEmptySelection is returned when a checkout is attempted with no
// services selected. The caller surfaces it and performs no write.
var ErrEmptySelection = errors.New("select at least one service")

// ItemDetails carries pricing metadata forward through checkout so the
// request step can still offer price edits on variable-price services.
type ItemDetails struct {
	HasVariablePrice bool     `json:"hasVariablePrice"`
	MinPrice         *float64 `json:"minPrice,omitempty"`
}

// ServiceItem is the category-agnostic line item handed to the shared
// request flow. TotalPrice is frozen at finalize time.
type ServiceItem struct {
	Type       string      `json:"type"` // kra | data | business | other
	ServiceID  string      `json:"serviceId"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	UnitPrice  float64     `json:"unitPrice"`
	TotalPrice float64     `json:"totalPrice"`
	Details    ItemDetails `json:"details"`
}

// PendingRequest is the record written to the shared pending-request
// slot when a category cart is finalized.
type PendingRequest struct {
	Items     []ServiceItem `json:"items"`
	Category  string        `json:"category"`
	Total     float64       `json:"total"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Finalize flattens a category cart into a PendingRequest. The cart
// must contain at least one item, otherwise ErrEmptySelection is
// returned and nothing is produced.
func Finalize(c *Cart, categoryTag string) (*PendingRequest, error) {
	if len(c.Items) == 0 {
		return nil, ErrEmptySelection
	}

	items := make([]ServiceItem, 0, len(c.Items))
	for _, s := range c.Items {
		items = append(items, ServiceItem{
			Type:       categoryTag,
			ServiceID:  s.ID,
			Name:       s.Label,
			Quantity:   s.Quantity,
			UnitPrice:  s.UnitPrice(),
			TotalPrice: s.LineTotal(),
			Details: ItemDetails{
				HasVariablePrice: s.HasVariablePrice,
				MinPrice:         s.MinPrice,
			},
		})
	}

	return &PendingRequest{
		Items:     items,
		Category:  categoryTag,
		Total:     c.Total(),
		CreatedAt: time.Now(),
	}, nil
}
