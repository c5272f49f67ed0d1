package domain

import "time"

type Hotel struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" validate:"required" gorm:"uniqueIndex"`
	Address          string    `json:"address"`
	Tel              string    `json:"tel,omitempty"`
	Picture          string    `json:"picture,omitempty"`
	SubscriptionRank int       `json:"subscription_rank" gorm:"not null;default:1"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Hotel) TableName() string { return "hotels" }
