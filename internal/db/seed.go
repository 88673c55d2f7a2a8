package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo inventory: a few slots, campaigns with spread-out CPM
// bids, and image creatives for each campaign. Inserts are idempotent so
// repeated startups with PSQL_SEED=true do not duplicate rows.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	slots := []struct {
		key           string
		publisher     string
		width, height int
	}{
		{"homepage-top", "pub-1", 728, 90},
		{"sidebar-box", "pub-1", 300, 250},
		{"article-inline", "pub-2", 300, 250},
	}
	for i, s := range slots {
		_, err := db.Exec(ctx, `INSERT INTO slots (id, slot_key, publisher_id, width, height)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
			i+1, s.key, s.publisher, s.width, s.height)
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		budget := int64(500000)     // 5000.00 units
		cpm := int64(200 * i)       // 2.00 .. 10.00 per thousand
		cpc := int64(50 + 10*i)     // 0.60 .. 1.00 per click
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, status, cpm, cpc, budget, budget_spent, created_at, updated_at)
VALUES ($1,$2,$3,'active',$4,$5,$6,0,now(),now()) ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("adv-%d", i), name, cpm, cpc, budget)
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			crID := (i-1)*3 + j
			title := fmt.Sprintf("Creative %d for campaign %d", j, i)
			imageURL := fmt.Sprintf("https://example.com/banners/%d.png", crID)
			clickURL := fmt.Sprintf("https://example.com/landing/%d", crID)
			width := []int{728, 300, 300}[j-1]
			height := []int{90, 250, 250}[j-1]
			_, err = db.Exec(ctx, `INSERT INTO creatives
    (id, campaign_id, title, image_url, click_url, width, height, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT DO NOTHING`,
				crID, i, title, imageURL, clickURL, width, height)
			if err != nil {
				return err
			}
		}
	}

	// a little traffic history so the stats endpoint has something to show
	for i := 0; i < 200; i++ {
		creativeID := int64(r.Intn(15) + 1)
		campaignID := (creativeID-1)/3 + 1
		slotID := int64(r.Intn(3) + 1)
		publisher := []string{"pub-1", "pub-1", "pub-2"}[slotID-1]
		amount := int64(1)
		_, err := db.Exec(ctx, `INSERT INTO impressions
    (token, creative_id, campaign_id, slot_id, publisher_id, amount, created_at, delivered_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(), creativeID, campaignID, slotID, publisher, amount)
		if err != nil {
			return err
		}
		if r.Intn(10) == 0 {
			_, err = db.Exec(ctx, `INSERT INTO clicks
    (token, creative_id, campaign_id, slot_id, publisher_id, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), creativeID, campaignID, slotID, publisher, int64(60))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
