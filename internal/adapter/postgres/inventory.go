package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// readAttempts bounds retries of read queries. Writes are never retried
// here: the ledger and recorder own their write semantics.
const readAttempts = 3

// Inventory implements port.Inventory using pgxpool for PostgreSQL.
type Inventory struct {
	pool *pgxpool.Pool
}

// NewInventory returns a new inventory reader.
func NewInventory(pool *pgxpool.Pool) *Inventory {
	return &Inventory{pool: pool}
}

// withRetry runs fn up to readAttempts times with a short pause between
// attempts, stopping early when the context is done.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < readAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}
	return err
}

// GetSlotByKey resolves a slot by its embed key.
func (r *Inventory) GetSlotByKey(ctx context.Context, key string) (*domain.Slot, error) {
	var s domain.Slot
	err := withRetry(ctx, func() error {
		err := r.pool.QueryRow(ctx,
			`SELECT id, slot_key, publisher_id, width, height, created_at FROM slots WHERE slot_key = $1`, key).
			Scan(&s.ID, &s.Key, &s.PublisherID, &s.Width, &s.Height, &s.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

// GetSlot returns a slot by id.
func (r *Inventory) GetSlot(ctx context.Context, id int64) (*domain.Slot, error) {
	var s domain.Slot
	err := r.pool.QueryRow(ctx,
		`SELECT id, slot_key, publisher_id, width, height, created_at FROM slots WHERE id = $1`, id).
		Scan(&s.ID, &s.Key, &s.PublisherID, &s.Width, &s.Height, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetEligibleCampaigns returns active campaigns with remaining budget and
// their creatives, ordered by descending cpm with ascending id tie-break
// so selection is reproducible. A campaign with zero creatives still
// appears with an empty slice: if it wins the auction the placement is a
// no fill, it does not fall through to the runner-up.
func (r *Inventory) GetEligibleCampaigns(ctx context.Context) ([]port.Candidate, error) {
	const query = `
        SELECT
            c.id, c.advertiser_id, c.name, c.status, c.cpm, c.cpc,
            c.budget, c.budget_spent, c.created_at, c.updated_at,
            cr.id, cr.campaign_id, cr.title, cr.image_url, cr.click_url,
            cr.width, cr.height, cr.created_at, cr.updated_at
        FROM campaigns c
        LEFT JOIN creatives cr ON cr.campaign_id = c.id
        WHERE c.status = 'active'
          AND c.budget_spent < c.budget
        ORDER BY c.cpm DESC, c.id ASC, cr.id ASC`

	var candidates []port.Candidate
	err := withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query)
		if err != nil {
			return err
		}
		type rawCandidate struct {
			Camp domain.Campaign
			Cr   *domain.Creative
		}
		raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawCandidate, error) {
			var rc rawCandidate
			var (
				crID, crCampaignID              *int64
				crTitle, crImageURL, crClickURL *string
				crWidth, crHeight               *int
				crCreatedAt, crUpdatedAt        *time.Time
			)
			err := row.Scan(
				&rc.Camp.ID, &rc.Camp.AdvertiserID, &rc.Camp.Name, &rc.Camp.Status,
				&rc.Camp.CPM, &rc.Camp.CPC, &rc.Camp.Budget, &rc.Camp.BudgetSpent,
				&rc.Camp.CreatedAt, &rc.Camp.UpdatedAt,
				&crID, &crCampaignID, &crTitle, &crImageURL, &crClickURL,
				&crWidth, &crHeight, &crCreatedAt, &crUpdatedAt,
			)
			if err != nil {
				return rc, err
			}
			if crID != nil {
				rc.Cr = &domain.Creative{
					ID:         *crID,
					CampaignID: *crCampaignID,
					Title:      *crTitle,
					ImageURL:   *crImageURL,
					ClickURL:   *crClickURL,
					Width:      *crWidth,
					Height:     *crHeight,
					CreatedAt:  *crCreatedAt,
					UpdatedAt:  *crUpdatedAt,
				}
			}
			return rc, nil
		})
		if err != nil {
			return err
		}

		candidates = candidates[:0]
		for _, rc := range raw {
			n := len(candidates)
			if n == 0 || candidates[n-1].Campaign.ID != rc.Camp.ID {
				candidates = append(candidates, port.Candidate{Campaign: rc.Camp})
				n++
			}
			if rc.Cr != nil {
				candidates[n-1].Creatives = append(candidates[n-1].Creatives, *rc.Cr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetCreative returns a creative by id.
func (r *Inventory) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	var cr domain.Creative
	err := withRetry(ctx, func() error {
		err := r.pool.QueryRow(ctx,
			`SELECT id, campaign_id, title, image_url, click_url, width, height, created_at, updated_at FROM creatives WHERE id = $1`, id).
			Scan(&cr.ID, &cr.CampaignID, &cr.Title, &cr.ImageURL, &cr.ClickURL, &cr.Width, &cr.Height, &cr.CreatedAt, &cr.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if cr.ID == 0 {
		return nil, nil
	}
	return &cr, nil
}

// GetCampaign returns a campaign by id.
func (r *Inventory) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := withRetry(ctx, func() error {
		err := r.pool.QueryRow(ctx,
			`SELECT id, advertiser_id, name, status, cpm, cpc, budget, budget_spent, created_at, updated_at FROM campaigns WHERE id = $1`, id).
			Scan(&c.ID, &c.AdvertiserID, &c.Name, &c.Status, &c.CPM, &c.CPC, &c.Budget, &c.BudgetSpent, &c.CreatedAt, &c.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}
