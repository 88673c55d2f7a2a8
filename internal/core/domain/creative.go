package domain

import "time"

// Creative is a renderable ad asset belonging to exactly one campaign.
type Creative struct {
	ID         int64
	CampaignID int64
	Title      string
	ImageURL   string
	ClickURL   string // advertiser landing page
	Width      int
	Height     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
