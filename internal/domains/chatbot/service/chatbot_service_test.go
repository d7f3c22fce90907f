package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttrack-backend/internal/domains/chatbot/model"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
)

// fakeInventoryRepo overrides only the aggregates the assistant consumes.
type fakeInventoryRepo struct {
	inventoryRepo.Repository

	near    int64
	expired int64
	value   *decimal.Decimal

	// captured window of the last CountExpiringBetween call
	start, end time.Time
}

func (f *fakeInventoryRepo) CountExpiringBetween(_ context.Context, start, end time.Time) (int64, error) {
	f.start, f.end = start, end
	return f.near, nil
}

func (f *fakeInventoryRepo) CountExpired(_ context.Context, _ time.Time) (int64, error) {
	return f.expired, nil
}

func (f *fakeInventoryRepo) TotalInventoryValue(_ context.Context) (*decimal.Decimal, error) {
	return f.value, nil
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
}

func reply(t *testing.T, repo *fakeInventoryRepo, message, mode string) *model.ChatResponse {
	t.Helper()

	svc := NewServiceWithClock(repo, fixedClock(2025, 6, 15))
	res, err := svc.Reply(context.Background(), model.ChatRequest{Message: message, Mode: mode})
	require.NoError(t, err)
	return res
}

func TestReplyBlankMessage(t *testing.T) {
	res := reply(t, &fakeInventoryRepo{}, "   ", "")

	assert.Equal(t, "Type a question. Try: 'what is FEFO?' or 'items expiring in 14 days'", res.Reply)
	assert.Equal(t, model.ModeHelp, res.Mode)
}

func TestReplyInventorySummaryWithExtractedDays(t *testing.T) {
	repo := &fakeInventoryRepo{near: 3, expired: 1}

	res := reply(t, repo, "what will expire in 14 days", "")

	assert.Equal(t,
		"Inventory summary: 3 batch(es) expiring within 14 day(s), and 1 expired batch(es). Tip: Use FEFO to pick items that expire sooner.",
		res.Reply)

	// The window runs from today to today+14.
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), repo.start)
	assert.Equal(t, time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC), repo.end)
}

func TestReplyInventorySummaryDefaultsToThirtyDays(t *testing.T) {
	repo := &fakeInventoryRepo{near: 5, expired: 0}

	res := reply(t, repo, "anything near expiry?", "")

	assert.Contains(t, res.Reply, "expiring within 30 day(s)")
}

func TestReplyInventoryModeForcesSummary(t *testing.T) {
	repo := &fakeInventoryRepo{near: 2, expired: 4}

	// No expiry keyword at all; the mode alone selects the summary.
	res := reply(t, repo, "hello there", "inventory")

	assert.Contains(t, res.Reply, "Inventory summary: 2 batch(es)")
	assert.Equal(t, model.ModeInventory, res.Mode)
}

func TestReplyDayExtractorTakesFirstNumber(t *testing.T) {
	repo := &fakeInventoryRepo{}

	// "2024" parses first and is inside the accepted range, so it wins
	// over the intended "14".
	res := reply(t, repo, "expire in 2024 14 days", "")

	assert.Contains(t, res.Reply, "within 2024 day(s)")
}

func TestReplyDayExtractorSkipsOutOfRangeNumbers(t *testing.T) {
	repo := &fakeInventoryRepo{}

	res := reply(t, repo, "expire in 5000 7 days", "")

	assert.Contains(t, res.Reply, "within 7 day(s)")
}

func TestReplyInventoryValue(t *testing.T) {
	v := decimal.NewFromFloat(1234.5)
	repo := &fakeInventoryRepo{value: &v}

	res := reply(t, repo, "what is the total inventory value?", "")

	assert.Equal(t, "Current estimated inventory value is $1234.50.", res.Reply)
}

func TestReplyInventoryValueEmptyStock(t *testing.T) {
	res := reply(t, &fakeInventoryRepo{value: nil}, "total value please", "")

	assert.Equal(t, "Current estimated inventory value is $0.", res.Reply)
}

func TestReplyFAQRules(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"fefo", "what is FEFO?", "FEFO means First-Expiry-First-Out"},
		{"fifo", "explain fifo", "FIFO means First-In-First-Out"},
		{"batch", "how does batch tracking work", "Batch/Lot tracking records stock"},
		{"lot", "what is a lot", "Batch/Lot tracking records stock"},
		{"add product", "how do I add a product", "To add inventory"},
		{"alerts", "show me alerts", "Alerts warn you about Near-Expiry and Expired items"},
		{"notification", "notification settings", "Alerts warn you about Near-Expiry and Expired items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reply(t, &fakeInventoryRepo{}, tt.message, "")
			assert.Contains(t, res.Reply, tt.want)
		})
	}
}

func TestReplyBatchRuleWinsOverAddRule(t *testing.T) {
	// "add a batch" contains both "add" and "batch"; the batch/lot rule
	// comes first in the cascade.
	res := reply(t, &fakeInventoryRepo{}, "how do I add a batch", "")

	assert.Contains(t, res.Reply, "Batch/Lot tracking records stock")
}

func TestReplyKeywordMatchIsExactSubstring(t *testing.T) {
	// "expiring" contains neither "expire" nor "expiry", so without the
	// INVENTORY mode this lands on the fallback.
	res := reply(t, &fakeInventoryRepo{}, "items expiring in 14 days", "")

	assert.Contains(t, res.Reply, "I can help with expiry, batches")
}

func TestReplyFallback(t *testing.T) {
	res := reply(t, &fakeInventoryRepo{}, "tell me a joke", "")

	assert.Equal(t,
		"I can help with expiry, batches, FEFO/FIFO, and system usage. Try: 'items expiring in 7 days', 'what is FEFO?', or 'inventory value'.",
		res.Reply)
}

func TestReplyModeNormalized(t *testing.T) {
	res := reply(t, &fakeInventoryRepo{}, "what is fefo", "  help  ")

	assert.Equal(t, model.ModeHelp, res.Mode)
}

func TestExtractDays(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"items expiring in 14 days", 14, true},
		{"expiring in 0 days", 0, true},
		{"expiring in 3650 days", 3650, true},
		{"expiring in 3651 days", 0, false},
		{"expiring soon", 0, false},
		{"in 7days", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := extractDays(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
