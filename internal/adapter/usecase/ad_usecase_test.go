package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
	"adserve/internal/core/port/mocks"
)

func newTestService(inv port.Inventory, ledger port.Ledger, rec port.EventRecorder) *AdService {
	return NewAdService(inv, ledger, rec, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testSlot() *domain.Slot {
	return &domain.Slot{ID: 11, Key: "sidebar-box", PublisherID: "pub-1", Width: 300, Height: 250}
}

// TestPlaceAdWinsHighestCPM runs a full placement: the cpm=8000 campaign
// must beat cpm=5000, be charged its per-impression price of 8, and
// produce exactly one impression row and one earnings credit.
func TestPlaceAdWinsHighestCPM(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetSlotByKey(mock.Anything, "sidebar-box").Return(testSlot(), nil)
	inv.EXPECT().GetEligibleCampaigns(mock.Anything).Return([]port.Candidate{
		{
			Campaign:  domain.Campaign{ID: 1, Status: domain.StatusActive, CPM: 5000, Budget: 1000},
			Creatives: []domain.Creative{{ID: 101, CampaignID: 1, ImageURL: "img1", ClickURL: "l1"}},
		},
		{
			Campaign:  domain.Campaign{ID: 2, Status: domain.StatusActive, CPM: 8000, Budget: 1000},
			Creatives: []domain.Creative{{ID: 201, CampaignID: 2, Title: "Banner", ImageURL: "img2", ClickURL: "l2"}},
		},
	}, nil)
	ledger.EXPECT().Charge(mock.Anything, int64(2), int64(8)).Return(8, nil)

	var logged *domain.Impression
	rec.EXPECT().
		LogImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Run(func(ctx context.Context, imp *domain.Impression) { logged = imp }).
		Return(nil)
	rec.EXPECT().
		CreditEarnings(mock.Anything, domain.Earnings{PublisherID: "pub-1", Impressions: 1, Revenue: 8}).
		Return(nil)

	svc := newTestService(inv, ledger, rec)

	p, err := svc.PlaceAd(context.Background(), "sidebar-box")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, p.Filled)
	assert.EqualValues(t, 201, p.CreativeID)
	assert.Equal(t, "img2", p.ImageURL)
	assert.Contains(t, p.ClickURL, "creative_id=201")
	assert.Contains(t, p.ClickURL, "slot_id=11")

	require.NotNil(t, logged)
	assert.EqualValues(t, 8, logged.Amount)
	assert.EqualValues(t, 11, logged.SlotID)
	assert.Equal(t, "pub-1", logged.PublisherID)
	assert.NotEmpty(t, logged.Token)
	assert.True(t, strings.Contains(p.PixelURL, logged.Token), "pixel URL must carry the impression token")
}

// TestPlaceAdSlotNotFound: unknown slot key means no charge and no event.
// The mocks have no charge or log expectations, so any such call fails
// the test.
func TestPlaceAdSlotNotFound(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetSlotByKey(mock.Anything, "nope").Return(nil, nil)

	svc := newTestService(inv, ledger, rec)

	_, err := svc.PlaceAd(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrSlotNotFound)
}

// TestPlaceAdNoEligibleCampaigns yields a no-fill placement that still
// carries the slot for the fallback rendering.
func TestPlaceAdNoEligibleCampaigns(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetSlotByKey(mock.Anything, "sidebar-box").Return(testSlot(), nil)
	inv.EXPECT().GetEligibleCampaigns(mock.Anything).Return(nil, nil)

	svc := newTestService(inv, ledger, rec)

	p, err := svc.PlaceAd(context.Background(), "sidebar-box")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Filled)
	assert.Equal(t, 300, p.Slot.Width)
}

// TestPlaceAdRejectedChargeIsNoFill: a rejected charge must not render
// the creative, and nothing may be logged or credited.
func TestPlaceAdRejectedChargeIsNoFill(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetSlotByKey(mock.Anything, "sidebar-box").Return(testSlot(), nil)
	inv.EXPECT().GetEligibleCampaigns(mock.Anything).Return([]port.Candidate{
		{
			Campaign:  domain.Campaign{ID: 1, Status: domain.StatusActive, CPM: 1000, Budget: 100, BudgetSpent: 100},
			Creatives: []domain.Creative{{ID: 101, CampaignID: 1}},
		},
	}, nil)
	ledger.EXPECT().Charge(mock.Anything, int64(1), int64(1)).Return(0, port.ErrBudgetExhausted)

	svc := newTestService(inv, ledger, rec)

	p, err := svc.PlaceAd(context.Background(), "sidebar-box")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Filled)
}

// TestTrackClickChargesAndCredits: a successful click charge produces
// exactly one click row and one earnings increment.
func TestTrackClickChargesAndCredits(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetCreative(mock.Anything, int64(101)).
		Return(&domain.Creative{ID: 101, CampaignID: 1, ClickURL: "https://adv.example/landing"}, nil)
	inv.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, Status: domain.StatusActive, CPC: 50, Budget: 1000}, nil)
	inv.EXPECT().GetSlot(mock.Anything, int64(11)).Return(testSlot(), nil)
	ledger.EXPECT().Charge(mock.Anything, int64(1), int64(50)).Return(50, nil)

	var logged *domain.Click
	rec.EXPECT().
		LogClick(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(ctx context.Context, click *domain.Click) { logged = click }).
		Return(nil)
	rec.EXPECT().
		CreditEarnings(mock.Anything, domain.Earnings{PublisherID: "pub-1", Clicks: 1, Revenue: 50}).
		Return(nil)

	svc := newTestService(inv, ledger, rec)

	landing, err := svc.TrackClick(context.Background(), 101, 11)
	require.NoError(t, err)
	assert.Equal(t, "https://adv.example/landing", landing)

	require.NotNil(t, logged)
	assert.EqualValues(t, 50, logged.Amount)
	assert.Equal(t, "pub-1", logged.PublisherID)
}

// TestTrackClickExhaustedCampaignStillRedirects: a click on a depleted,
// ended campaign is rejected by the ledger but the user is still sent to
// the landing page; no click row, no earnings.
func TestTrackClickExhaustedCampaignStillRedirects(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetCreative(mock.Anything, int64(101)).
		Return(&domain.Creative{ID: 101, CampaignID: 1, ClickURL: "https://adv.example/landing"}, nil)
	inv.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, Status: domain.StatusEnded, CPC: 50, Budget: 100, BudgetSpent: 100}, nil)
	inv.EXPECT().GetSlot(mock.Anything, int64(11)).Return(testSlot(), nil)
	ledger.EXPECT().Charge(mock.Anything, int64(1), int64(50)).Return(0, port.ErrBudgetExhausted)

	svc := newTestService(inv, ledger, rec)

	landing, err := svc.TrackClick(context.Background(), 101, 11)
	require.NoError(t, err)
	assert.Equal(t, "https://adv.example/landing", landing)
}

// TestTrackClickUnknownCreative: nothing resolves, nothing is charged.
func TestTrackClickUnknownCreative(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetCreative(mock.Anything, int64(404)).Return(nil, nil)

	svc := newTestService(inv, ledger, rec)

	_, err := svc.TrackClick(context.Background(), 404, 11)
	assert.ErrorIs(t, err, port.ErrCreativeNotFound)
}

// TestServeAdLegacyRandom exercises the legacy path: random pick, same
// capped charge, click URL addressed to the legacy endpoint.
func TestServeAdLegacyRandom(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetEligibleCampaigns(mock.Anything).Return([]port.Candidate{
		{
			Campaign:  domain.Campaign{ID: 3, Status: domain.StatusActive, CPM: 2000, Budget: 500},
			Creatives: []domain.Creative{{ID: 301, CampaignID: 3, Title: "Legacy", ImageURL: "img3", ClickURL: "l3"}},
		},
	}, nil)
	ledger.EXPECT().Charge(mock.Anything, int64(3), int64(2)).Return(2, nil)
	rec.EXPECT().LogImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).Return(nil)
	rec.EXPECT().
		CreditEarnings(mock.Anything, domain.Earnings{PublisherID: "pub-9", Impressions: 1, Revenue: 2}).
		Return(nil)

	svc := newTestService(inv, ledger, rec)

	ad, err := svc.ServeAd(context.Background(), "pub-9")
	require.NoError(t, err)
	require.NotNil(t, ad)
	assert.EqualValues(t, 301, ad.ID)
	assert.Contains(t, ad.ClickURL, "ad_id=301")
	assert.Contains(t, ad.ClickURL, "pub_id=pub-9")
}

// TestPublisherEarningsZeroValue: unknown publishers get a zero record,
// not an error.
func TestPublisherEarningsZeroValue(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	rec.EXPECT().GetEarnings(mock.Anything, "pub-0").Return(nil, nil)

	svc := newTestService(inv, ledger, rec)

	e, err := svc.PublisherEarnings(context.Background(), "pub-0")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "pub-0", e.PublisherID)
	assert.Zero(t, e.Revenue)
}

// TestConcurrentPlacementsRespectBudget simulates the ledger with a
// mutex-guarded counter and storms PlaceAd from many goroutines: the
// number of filled placements must equal the budget divided by the
// per-impression price, and the spent amount must never pass the cap.
func TestConcurrentPlacementsRespectBudget(t *testing.T) {
	inv := mocks.NewMockInventory(t)
	ledger := mocks.NewMockLedger(t)
	rec := mocks.NewMockEventRecorder(t)

	inv.EXPECT().GetSlotByKey(mock.Anything, "sidebar-box").Return(testSlot(), nil)
	inv.EXPECT().GetEligibleCampaigns(mock.Anything).Return([]port.Candidate{
		{
			Campaign:  domain.Campaign{ID: 1, Status: domain.StatusActive, CPM: 1000, Budget: 100},
			Creatives: []domain.Creative{{ID: 101, CampaignID: 1, ImageURL: "img", ClickURL: "l"}},
		},
	}, nil)

	var (
		mu     sync.Mutex
		budget int64 = 100
		spent  int64
	)
	ledger.EXPECT().
		Charge(mock.Anything, int64(1), int64(1)).
		RunAndReturn(func(ctx context.Context, campaignID, amount int64) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			if spent+amount > budget {
				return 0, port.ErrBudgetExhausted
			}
			spent += amount
			return spent, nil
		})
	rec.EXPECT().LogImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).Return(nil)
	rec.EXPECT().CreditEarnings(mock.Anything, mock.AnythingOfType("domain.Earnings")).Return(nil)

	svc := newTestService(inv, ledger, rec)

	const requests = 150
	var filled atomic.Int64
	var wg sync.WaitGroup
	wg.Add(requests)
	for i := 0; i < requests; i++ {
		go func() {
			defer wg.Done()
			p, err := svc.PlaceAd(context.Background(), "sidebar-box")
			if err == nil && p != nil && p.Filled {
				filled.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 100, spent, "spent must stop exactly at the budget")
	assert.EqualValues(t, 100, filled.Load(), "one filled placement per charged unit")
}
