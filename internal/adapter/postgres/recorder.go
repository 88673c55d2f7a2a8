package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// Recorder implements port.EventRecorder on PostgreSQL. Event rows are
// append-only; the earnings aggregate is updated with an additive upsert
// so concurrent credits to one publisher commute.
type Recorder struct {
	pool *pgxpool.Pool
}

// NewRecorder returns a new event recorder backed by the given pool.
func NewRecorder(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

// LogImpression appends an impression row.
func (r *Recorder) LogImpression(ctx context.Context, imp *domain.Impression) error {
	imp.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `INSERT INTO impressions
    (token, creative_id, campaign_id, slot_id, publisher_id, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		imp.Token, imp.CreativeID, imp.CampaignID, imp.SlotID, imp.PublisherID, imp.Amount, imp.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert impression: %w", err)
	}
	return nil
}

// MarkDelivered sets delivered_at for the tokened impression once. Unknown
// or already-delivered tokens match no row, which is not an error.
func (r *Recorder) MarkDelivered(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE impressions SET delivered_at = now() WHERE token = $1 AND delivered_at IS NULL`, token)
	if err != nil {
		return fmt.Errorf("mark impression delivered: %w", err)
	}
	return nil
}

// LogClick appends a click row.
func (r *Recorder) LogClick(ctx context.Context, click *domain.Click) error {
	click.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `INSERT INTO clicks
    (token, creative_id, campaign_id, slot_id, publisher_id, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		click.Token, click.CreativeID, click.CampaignID, click.SlotID, click.PublisherID, click.Amount, click.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// CreditEarnings adds the delta to the publisher's aggregate. The upsert
// accumulates instead of overwriting, so any interleaving of concurrent
// credits sums to the same totals.
func (r *Recorder) CreditEarnings(ctx context.Context, delta domain.Earnings) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO earnings (publisher_id, impressions, clicks, revenue, updated_at)
VALUES ($1,$2,$3,$4,now())
ON CONFLICT (publisher_id) DO UPDATE
SET impressions = earnings.impressions + EXCLUDED.impressions,
    clicks      = earnings.clicks + EXCLUDED.clicks,
    revenue     = earnings.revenue + EXCLUDED.revenue,
    updated_at  = now()`,
		delta.PublisherID, delta.Impressions, delta.Clicks, delta.Revenue)
	if err != nil {
		return fmt.Errorf("credit earnings for %s: %w", delta.PublisherID, err)
	}
	return nil
}

// GetEarnings returns the publisher's aggregate, or nil when absent.
func (r *Recorder) GetEarnings(ctx context.Context, publisherID string) (*domain.Earnings, error) {
	var e domain.Earnings
	err := r.pool.QueryRow(ctx,
		`SELECT publisher_id, impressions, clicks, revenue, updated_at FROM earnings WHERE publisher_id = $1`,
		publisherID).
		Scan(&e.PublisherID, &e.Impressions, &e.Clicks, &e.Revenue, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetStats returns aggregated events for campaigns.
func (r *Recorder) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	impQuery := fmt.Sprintf(`SELECT COALESCE(count(*),0), COALESCE(sum(amount),0) FROM impressions WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var impCount, impCost int64
	err := r.pool.QueryRow(ctx, impQuery, args...).Scan(&impCount, &impCost)
	if err != nil {
		return nil, err
	}
	clickQuery := fmt.Sprintf(`SELECT COALESCE(count(*),0), COALESCE(sum(amount),0) FROM clicks WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var clickCount, clickCost int64
	err = r.pool.QueryRow(ctx, clickQuery, args...).Scan(&clickCount, &clickCost)
	if err != nil {
		return nil, err
	}
	return &port.StatsResp{
		Impressions: impCount,
		Clicks:      clickCount,
		Cost:        impCost + clickCost,
	}, nil
}
