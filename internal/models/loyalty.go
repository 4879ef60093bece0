package models

// RewardType classifies how a loyalty reward is redeemed.
type RewardType string

const (
	RewardDiscount    RewardType = "discount"
	RewardUpgrade     RewardType = "upgrade"
	RewardFreeSession RewardType = "free-session"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardDiscount, RewardUpgrade, RewardFreeSession:
		return true
	}
	return false
}

type LoyaltyReward struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	PointsRequired     int        `json:"pointsRequired"`
	DiscountPercentage float64    `json:"discountPercentage"`
	Type               RewardType `json:"type"`
	IsActive           bool       `json:"isActive"`
}
