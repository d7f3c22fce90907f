package model

import "github.com/shopspring/decimal"

// SystemStatus summarizes inventory health for the dashboard header.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "HEALTHY"
	StatusWarning  SystemStatus = "WARNING"
	StatusCritical SystemStatus = "CRITICAL"
)

// ForecastMonths is the fixed number of buckets in the expiry forecast.
const ForecastMonths = 6

// ForecastBucket is one month of the expiry forecast. Month is the short
// English month name ("Jan", "Feb", ...).
type ForecastBucket struct {
	Month        string `json:"month"`
	ExpiryVolume int64  `json:"expiry_volume"`
}

// CategorySlice is one category's share of the active stock. Count is the
// number of active batches, Value the sum of their quantity times unit price.
type CategorySlice struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Value    decimal.Decimal `json:"value"`
	Color    string          `json:"color"`
}

// Overview is the aggregated dashboard payload, computed fresh on every
// request from a single evaluation date.
type Overview struct {
	TotalStock        int64            `json:"total_stock"`
	InventoryValue    decimal.Decimal  `json:"inventory_value"`
	NearExpiryCount   int64            `json:"near_expiry_count"`
	ExpiredCount      int64            `json:"expired_count"`
	SystemStatus      SystemStatus     `json:"system_status"`
	ExpiryForecast    []ForecastBucket `json:"expiry_forecast"`
	StockDistribution []CategorySlice  `json:"stock_distribution"`
}
