package port

import "errors"

// Charge rejections are business outcomes, not system errors. Handlers map
// them to no-fill or redirect-without-revenue responses, never to a 5xx.
var (
	ErrBudgetExhausted  = errors.New("budget exhausted")
	ErrCampaignInactive = errors.New("campaign inactive")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrCreativeNotFound = errors.New("creative not found")
)
