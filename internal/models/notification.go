package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type NotificationType string

const (
	NotifBookingConfirmed NotificationType = "booking-confirmed"
	NotifBookingCancelled NotificationType = "booking-cancelled"
	NotifChefEnRoute      NotificationType = "chef-en-route"
	NotifChefArrived      NotificationType = "chef-arrived"
	NotifLoyaltyReward    NotificationType = "loyalty-reward"
	NotifInvoiceReady     NotificationType = "invoice-ready"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifBookingConfirmed, NotifBookingCancelled, NotifChefEnRoute,
		NotifChefArrived, NotifLoyaltyReward, NotifInvoiceReady:
		return true
	}
	return false
}

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	// Data carries a per-type payload; see DecodeData for the accepted
	// shape of each notification type.
	Data json.RawMessage `json:"data,omitempty"`
}

// ChefEnRouteData accompanies chef-en-route and chef-arrived notifications.
type ChefEnRouteData struct {
	ChefID string `json:"chefId"`
	ETA    string `json:"eta,omitempty"`
}

// LoyaltyRewardData accompanies loyalty-reward notifications.
type LoyaltyRewardData struct {
	PointsEarned int `json:"pointsEarned"`
	TotalPoints  int `json:"totalPoints"`
}

// BookingRefData accompanies booking-confirmed and booking-cancelled
// notifications.
type BookingRefData struct {
	BookingID string `json:"bookingId"`
}

// InvoiceRefData accompanies invoice-ready notifications.
type InvoiceRefData struct {
	InvoiceID string `json:"invoiceId"`
}

// DecodeData decodes the payload against the shape the notification type
// requires, rejecting unknown fields. A missing payload decodes to nil.
func (n Notification) DecodeData() (any, error) {
	if len(n.Data) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(n.Data))
	dec.DisallowUnknownFields()
	switch n.Type {
	case NotifChefEnRoute, NotifChefArrived:
		var d ChefEnRouteData
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", n.Type, err)
		}
		return d, nil
	case NotifLoyaltyReward:
		var d LoyaltyRewardData
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", n.Type, err)
		}
		return d, nil
	case NotifBookingConfirmed, NotifBookingCancelled:
		var d BookingRefData
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", n.Type, err)
		}
		return d, nil
	case NotifInvoiceReady:
		var d InvoiceRefData
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", n.Type, err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("no data shape defined for notification type %q", n.Type)
}
