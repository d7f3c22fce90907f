package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"smarttrack-backend/internal/domains/chatbot/model"
	inventoryModel "smarttrack-backend/internal/domains/inventory/model"
	inventoryRepo "smarttrack-backend/internal/domains/inventory/repository"
)

// maxForecastDays caps the window a user can ask about (~10 years).
const maxForecastDays = 3650

// Service answers assistant messages with a fixed rule cascade over live
// inventory numbers. No conversation state is kept between calls.
type Service interface {
	Reply(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error)
}

type chatbotService struct {
	inventory inventoryRepo.Repository
	now       func() time.Time
}

// NewService creates a new chatbot service
func NewService(inventory inventoryRepo.Repository) Service {
	return NewServiceWithClock(inventory, time.Now)
}

// NewServiceWithClock allows injecting a fixed clock in tests.
func NewServiceWithClock(inventory inventoryRepo.Repository, now func() time.Time) Service {
	return &chatbotService{inventory: inventory, now: now}
}

// Reply implements Service.Reply. Rules are evaluated top to bottom and the
// first match wins; reordering them changes behavior.
func (s *chatbotService) Reply(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	mode := strings.ToUpper(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = model.ModeHelp
	}

	msg := strings.TrimSpace(req.Message)
	lower := strings.ToLower(msg)

	reply, err := s.replyText(ctx, mode, lower)
	if err != nil {
		return nil, err
	}

	return &model.ChatResponse{Reply: reply, Mode: mode}, nil
}

func (s *chatbotService) replyText(ctx context.Context, mode, lower string) (string, error) {
	if lower == "" {
		return "Type a question. Try: 'what is FEFO?' or 'items expiring in 14 days'", nil
	}

	if mode == model.ModeInventory ||
		strings.Contains(lower, "expire") ||
		strings.Contains(lower, "expiry") ||
		strings.Contains(lower, "near expiry") {
		return s.inventorySummary(ctx, lower)
	}

	if strings.Contains(lower, "total") &&
		(strings.Contains(lower, "value") || strings.Contains(lower, "inventory value")) {
		return s.inventoryValuation(ctx)
	}

	if strings.Contains(lower, "fefo") {
		return "FEFO means First-Expiry-First-Out: always use/sell the batch with the nearest expiry date first to reduce waste.", nil
	}
	if strings.Contains(lower, "fifo") {
		return "FIFO means First-In-First-Out: you use older received stock first. FEFO is better when expiry dates vary.", nil
	}
	if strings.Contains(lower, "batch") || strings.Contains(lower, "lot") {
		return "Batch/Lot tracking records stock per batch number + expiry date. This improves traceability and recall management.", nil
	}
	if strings.Contains(lower, "add") &&
		(strings.Contains(lower, "batch") || strings.Contains(lower, "product")) {
		return "To add inventory: go to Inventory List -> Add Product (or add batch). Enter product, batch number, qty, and expiry date.", nil
	}
	if strings.Contains(lower, "alerts") || strings.Contains(lower, "notification") {
		return "Alerts warn you about Near-Expiry and Expired items. Use them to prioritize FEFO picking or disposal actions.", nil
	}

	return "I can help with expiry, batches, FEFO/FIFO, and system usage. Try: 'items expiring in 7 days', 'what is FEFO?', or 'inventory value'.", nil
}

func (s *chatbotService) inventorySummary(ctx context.Context, lower string) (string, error) {
	days := inventoryModel.NearExpiryWindowDays
	if extracted, ok := extractDays(lower); ok {
		days = extracted
	}

	today := inventoryModel.ToDay(s.now())

	near, err := s.inventory.CountExpiringBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return "", fmt.Errorf("failed to count near-expiry batches: %w", err)
	}

	expired, err := s.inventory.CountExpired(ctx, today)
	if err != nil {
		return "", fmt.Errorf("failed to count expired batches: %w", err)
	}

	return fmt.Sprintf(
		"Inventory summary: %d batch(es) expiring within %d day(s), and %d expired batch(es). Tip: Use FEFO to pick items that expire sooner.",
		near, days, expired,
	), nil
}

func (s *chatbotService) inventoryValuation(ctx context.Context) (string, error) {
	value, err := s.inventory.TotalInventoryValue(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to sum inventory value: %w", err)
	}

	formatted := "0"
	if value != nil {
		formatted = value.StringFixed(2)
	}

	return fmt.Sprintf("Current estimated inventory value is $%s.", formatted), nil
}

// extractDays finds a day count in a message like "items expiring in 14
// days". Everything except digits and spaces is blanked out, and the first
// whitespace token that parses as an integer in [0, 3650] wins. That means
// "expiring in 2024 14 days" yields 2024; callers accept that quirk.
func extractDays(lower string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ' ' {
			return r
		}
		return ' '
	}, lower)

	for _, token := range strings.Fields(cleaned) {
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if n >= 0 && n <= maxForecastDays {
			return n, true
		}
	}

	return 0, false
}
