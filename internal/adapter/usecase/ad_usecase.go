package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// chargeTimeout bounds a single ledger call. A charge that cannot commit
// in time is treated as rejected, never left hanging the request.
const chargeTimeout = 2 * time.Second

// AdService implements port.AdUseCase. It orchestrates the inventory, the
// ledger and the event recorder: the ledger is the only authority on
// spend, the recorder is best-effort downstream of it.
type AdService struct {
	inventory port.Inventory
	ledger    port.Ledger
	recorder  port.EventRecorder
	auction   Selector
	random    Selector
	logger    *slog.Logger
}

// NewAdService wires the service with the CPM auction for placements and
// the legacy random strategy for the old serve endpoint.
func NewAdService(inv port.Inventory, ledger port.Ledger, recorder port.EventRecorder, logger *slog.Logger) *AdService {
	return &AdService{
		inventory: inv,
		ledger:    ledger,
		recorder:  recorder,
		auction:   AuctionSelector{},
		random:    NewRandomSelector(time.Now().UnixNano()),
		logger:    logger,
	}
}

// PlaceAd runs one placement request for the given slot key.
func (s *AdService) PlaceAd(ctx context.Context, slotKey string) (*port.Placement, error) {
	slot, err := s.inventory.GetSlotByKey(ctx, slotKey)
	if err != nil {
		return nil, fmt.Errorf("resolve slot %q: %w", slotKey, err)
	}
	if slot == nil {
		return nil, port.ErrSlotNotFound
	}

	candidates, err := s.inventory.GetEligibleCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("load eligible campaigns: %w", err)
	}
	noFill := &port.Placement{Slot: *slot}
	winner := s.auction.Select(candidates)
	if winner == nil || len(winner.Creatives) == 0 {
		return noFill, nil
	}
	// creatives arrive ordered by id; taking the first keeps the
	// placement reproducible
	creative := winner.Creatives[0]

	price := winner.Campaign.ImpressionPrice()
	if err = s.charge(ctx, winner.Campaign.ID, price); err != nil {
		if isRejection(err) {
			// a rejected charge must not render the creative
			return noFill, nil
		}
		return nil, fmt.Errorf("charge impression: %w", err)
	}

	token := uuid.NewString()
	s.recordImpression(ctx, &domain.Impression{
		Token:       token,
		CreativeID:  creative.ID,
		CampaignID:  winner.Campaign.ID,
		SlotID:      slot.ID,
		PublisherID: slot.PublisherID,
		Amount:      price,
	})

	return &port.Placement{
		Slot:       *slot,
		Filled:     true,
		CreativeID: creative.ID,
		Title:      creative.Title,
		ImageURL:   creative.ImageURL,
		Width:      orDefault(creative.Width, slot.Width),
		Height:     orDefault(creative.Height, slot.Height),
		ClickURL:   fmt.Sprintf("/track/click?creative_id=%d&slot_id=%d", creative.ID, slot.ID),
		PixelURL:   fmt.Sprintf("/track/impression?creative_id=%d&slot_id=%d&t=%s", creative.ID, slot.ID, token),
	}, nil
}

// TrackImpression confirms pixel delivery for the tokened impression.
func (s *AdService) TrackImpression(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.recorder.MarkDelivered(ctx, token)
}

// TrackClick charges the click and returns the landing URL. The landing
// URL is returned for every resolvable creative, whatever the charge
// outcome: only revenue stops at budget exhaustion, not the redirect.
func (s *AdService) TrackClick(ctx context.Context, creativeID, slotID int64) (string, error) {
	creative, err := s.inventory.GetCreative(ctx, creativeID)
	if err != nil {
		return "", fmt.Errorf("resolve creative %d: %w", creativeID, err)
	}
	if creative == nil {
		return "", port.ErrCreativeNotFound
	}
	campaign, err := s.inventory.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return "", fmt.Errorf("resolve campaign %d: %w", creative.CampaignID, err)
	}
	if campaign == nil {
		return "", port.ErrCampaignNotFound
	}

	// publisher attribution comes from the slot; an unknown slot still
	// redirects, it just earns nobody anything
	publisherID := ""
	if slot, slotErr := s.inventory.GetSlot(ctx, slotID); slotErr == nil && slot != nil {
		publisherID = slot.PublisherID
	}

	if err = s.charge(ctx, campaign.ID, campaign.CPC); err != nil {
		if !isRejection(err) {
			s.logger.Error("click charge failed", slog.Int64("campaign_id", campaign.ID), slog.Any("error", err))
		}
		return creative.ClickURL, nil
	}

	s.recordClick(ctx, &domain.Click{
		Token:       uuid.NewString(),
		CreativeID:  creative.ID,
		CampaignID:  campaign.ID,
		SlotID:      slotID,
		PublisherID: publisherID,
		Amount:      campaign.CPC,
	})
	return creative.ClickURL, nil
}

// ServeAd is the legacy placement: uniform random pick, no auction. The
// charge and earnings paths are the same capped atomic ones as PlaceAd.
func (s *AdService) ServeAd(ctx context.Context, publisherID string) (*port.LegacyAd, error) {
	candidates, err := s.inventory.GetEligibleCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("load eligible campaigns: %w", err)
	}
	pick := s.random.Select(candidates)
	if pick == nil || len(pick.Creatives) == 0 {
		return nil, nil
	}
	creative := pick.Creatives[0]

	price := pick.Campaign.ImpressionPrice()
	if err = s.charge(ctx, pick.Campaign.ID, price); err != nil {
		if isRejection(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("charge impression: %w", err)
	}

	s.recordImpression(ctx, &domain.Impression{
		Token:       uuid.NewString(),
		CreativeID:  creative.ID,
		CampaignID:  pick.Campaign.ID,
		PublisherID: publisherID,
		Amount:      price,
	})

	return &port.LegacyAd{
		ID:       creative.ID,
		Title:    creative.Title,
		Image:    creative.ImageURL,
		ClickURL: fmt.Sprintf("/ads/click?ad_id=%d&pub_id=%s", creative.ID, url.QueryEscape(publisherID)),
	}, nil
}

// LegacyClick charges a click on the given creative for the
// caller-supplied publisher and returns the landing URL.
func (s *AdService) LegacyClick(ctx context.Context, adID int64, publisherID string) (string, error) {
	creative, err := s.inventory.GetCreative(ctx, adID)
	if err != nil {
		return "", fmt.Errorf("resolve creative %d: %w", adID, err)
	}
	if creative == nil {
		return "", port.ErrCreativeNotFound
	}
	campaign, err := s.inventory.GetCampaign(ctx, creative.CampaignID)
	if err != nil {
		return "", fmt.Errorf("resolve campaign %d: %w", creative.CampaignID, err)
	}
	if campaign == nil {
		return "", port.ErrCampaignNotFound
	}

	if err = s.charge(ctx, campaign.ID, campaign.CPC); err != nil {
		if !isRejection(err) {
			s.logger.Error("legacy click charge failed", slog.Int64("campaign_id", campaign.ID), slog.Any("error", err))
		}
		return creative.ClickURL, nil
	}

	s.recordClick(ctx, &domain.Click{
		Token:       uuid.NewString(),
		CreativeID:  creative.ID,
		CampaignID:  campaign.ID,
		PublisherID: publisherID,
		Amount:      campaign.CPC,
	})
	return creative.ClickURL, nil
}

// GetStats returns aggregated stats for campaigns in a period.
func (s *AdService) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return s.recorder.GetStats(ctx, req)
}

// PublisherEarnings returns the publisher's aggregate, zero-valued when
// the publisher has never earned.
func (s *AdService) PublisherEarnings(ctx context.Context, publisherID string) (*domain.Earnings, error) {
	e, err := s.recorder.GetEarnings(ctx, publisherID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return &domain.Earnings{PublisherID: publisherID}, nil
	}
	return e, nil
}

// charge runs one bounded ledger call.
func (s *AdService) charge(ctx context.Context, campaignID, amount int64) error {
	ctx, cancel := context.WithTimeout(ctx, chargeTimeout)
	defer cancel()
	_, err := s.ledger.Charge(ctx, campaignID, amount)
	return err
}

// recordImpression logs the impression row and credits the publisher.
// Both writes run detached from the request context: a committed charge is
// final, so a client disconnect must not lose its events. Failures are
// logged and swallowed — the ledger is the source of truth, the event log
// is best effort.
func (s *AdService) recordImpression(ctx context.Context, imp *domain.Impression) {
	logCtx := context.WithoutCancel(ctx)
	if err := s.recorder.LogImpression(logCtx, imp); err != nil {
		s.logger.Error("impression log failed after charge",
			slog.Int64("campaign_id", imp.CampaignID), slog.Any("error", err))
	}
	if imp.PublisherID == "" {
		return
	}
	err := s.recorder.CreditEarnings(logCtx, domain.Earnings{
		PublisherID: imp.PublisherID,
		Impressions: 1,
		Revenue:     imp.Amount,
	})
	if err != nil {
		s.logger.Error("earnings credit failed",
			slog.String("publisher_id", imp.PublisherID), slog.Any("error", err))
	}
}

// recordClick logs the click row and credits the publisher, detached from
// the request context like recordImpression.
func (s *AdService) recordClick(ctx context.Context, click *domain.Click) {
	logCtx := context.WithoutCancel(ctx)
	if err := s.recorder.LogClick(logCtx, click); err != nil {
		s.logger.Error("click log failed after charge",
			slog.Int64("campaign_id", click.CampaignID), slog.Any("error", err))
	}
	if click.PublisherID == "" {
		return
	}
	err := s.recorder.CreditEarnings(logCtx, domain.Earnings{
		PublisherID: click.PublisherID,
		Clicks:      1,
		Revenue:     click.Amount,
	})
	if err != nil {
		s.logger.Error("earnings credit failed",
			slog.String("publisher_id", click.PublisherID), slog.Any("error", err))
	}
}

// isRejection reports whether err is a business rejection of the charge
// rather than a system failure. Deadline expiry counts as a rejection: the
// spend may or may not have committed, but the request must not hang and
// the ledger is never rolled back.
func isRejection(err error) bool {
	return errors.Is(err, port.ErrBudgetExhausted) ||
		errors.Is(err, port.ErrCampaignInactive) ||
		errors.Is(err, port.ErrCampaignNotFound) ||
		errors.Is(err, context.DeadlineExceeded)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
