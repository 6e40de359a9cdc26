package model

import "strings"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists the valid statuses in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// ParseOrderStatus reports whether s names a valid status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// StatusList renders the valid statuses as "pending, preparing, ...".
func StatusList() string {
	names := make([]string, len(OrderStatuses))
	for i, status := range OrderStatuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}

// OrderDish is one line of an order.
type OrderDish struct {
	DishID   string `json:"dishId" yaml:"dishId"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Order is a delivery order. Once delivered it can no longer change, and
// it can only be deleted while pending.
type Order struct {
	ID           string      `json:"id" yaml:"id"`
	DeliverTo    string      `json:"deliverTo" yaml:"deliverTo"`
	MobileNumber string      `json:"mobileNumber" yaml:"mobileNumber"`
	Status       OrderStatus `json:"status" yaml:"status"`
	Dishes       []OrderDish `json:"dishes" yaml:"dishes"`
}

func (o Order) GetID() string { return o.ID }
