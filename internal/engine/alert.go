package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AlertType identifies what triggered an alert.
type AlertType string

const (
	AlertRunwayHealthy         AlertType = "runway_healthy"
	AlertRunwayWarning         AlertType = "runway_warning"
	AlertRunwayCritical        AlertType = "runway_critical"
	AlertBurnSpike             AlertType = "burn_spike"
	AlertProfitabilityAchieved AlertType = "profitability_achieved"
	AlertCashDepleted          AlertType = "cash_depleted"
	AlertGrowthStall           AlertType = "growth_stall"
)

// Severity ranks an alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AlertMetadata narrows alert details per type instead of carrying an
// untyped bag. Each alert family has its own concrete variant.
type AlertMetadata interface {
	alertMetadata()
}

// RunwayMetadata accompanies the runway_* and cash_depleted alerts.
type RunwayMetadata struct {
	RunwayMonths float64 `json:"runway_months"`
	Grade        string  `json:"grade"`
}

// BurnSpikeMetadata accompanies burn_spike alerts.
type BurnSpikeMetadata struct {
	MonthIndex         int     `json:"month_index"`
	MonthLabel         string  `json:"month_label"`
	ExpenseIncreasePct float64 `json:"expense_increase_pct"`
	RevenueIncreasePct float64 `json:"revenue_increase_pct"`
	NetImpact          float64 `json:"net_impact"`
}

// ProfitabilityMetadata accompanies profitability_achieved alerts.
type ProfitabilityMetadata struct {
	MonthIndex int    `json:"month_index"`
	MonthLabel string `json:"month_label"`
}

// GrowthStallMetadata accompanies growth_stall alerts.
type GrowthStallMetadata struct {
	NetRevenueRetention float64 `json:"net_revenue_retention"`
}

func (RunwayMetadata) alertMetadata()        {}
func (BurnSpikeMetadata) alertMetadata()     {}
func (ProfitabilityMetadata) alertMetadata() {}
func (GrowthStallMetadata) alertMetadata()   {}

// Alert is an ephemeral computation output. Acknowledged is the only field
// mutated after creation, and only by the external store that owns alert
// lifecycle.
type Alert struct {
	ID           string
	Type         AlertType
	Severity     Severity
	Title        string
	Description  string
	Timestamp    time.Time
	Metadata     AlertMetadata
	Acknowledged bool
}

// growthStallThreshold: net revenue retention below 95% reads as a stall.
const growthStallThreshold = 0.95

// AlertInputs feeds SynthesizeAlerts.
type AlertInputs struct {
	Health        HealthStatus
	Spike         BurnSpikeResult
	Profitability *int // month index of the profitability crossing, nil if none
	ProfitLabel   string
	HorizonMonths int

	// NetRevenueRetention is an optional external signal; nil means the
	// caller has no retention data.
	NetRevenueRetention *float64
}

// SynthesizeAlerts combines the grading, spike, profitability, and growth
// signals into a typed alert list. Rules are evaluated independently and
// every applicable alert is emitted, in insertion order (health, spike,
// profitability, growth); severity sorting is left to the consumer.
func SynthesizeAlerts(in AlertInputs) []Alert {
	now := time.Now()
	var alerts []Alert

	alerts = append(alerts, healthAlert(in.Health, now))

	if in.Spike.Detected {
		alerts = append(alerts, Alert{
			ID:          uuid.NewString(),
			Type:        AlertBurnSpike,
			Severity:    SeverityCritical,
			Title:       "Burn spike detected",
			Description: in.Spike.Message,
			Timestamp:   now,
			Metadata: BurnSpikeMetadata{
				MonthIndex:         in.Spike.MonthIndex,
				MonthLabel:         in.Spike.MonthLabel,
				ExpenseIncreasePct: in.Spike.ExpenseIncreasePct,
				RevenueIncreasePct: in.Spike.RevenueIncreasePct,
				NetImpact:          in.Spike.NetImpact,
			},
		})
	}

	if in.Profitability != nil && *in.Profitability < in.HorizonMonths {
		alerts = append(alerts, Alert{
			ID:          uuid.NewString(),
			Type:        AlertProfitabilityAchieved,
			Severity:    SeverityInfo,
			Title:       "Profitability within reach",
			Description: fmt.Sprintf("Revenue meets expenses in %s (month %d)", in.ProfitLabel, *in.Profitability+1),
			Timestamp:   now,
			Metadata: ProfitabilityMetadata{
				MonthIndex: *in.Profitability,
				MonthLabel: in.ProfitLabel,
			},
		})
	}

	if in.NetRevenueRetention != nil && *in.NetRevenueRetention < growthStallThreshold {
		alerts = append(alerts, Alert{
			ID:       uuid.NewString(),
			Type:     AlertGrowthStall,
			Severity: SeverityWarning,
			Title:    "Growth stall",
			Description: fmt.Sprintf("Net revenue retention at %.0f%%, below the %.0f%% floor",
				*in.NetRevenueRetention*100, growthStallThreshold*100),
			Timestamp: now,
			Metadata:  GrowthStallMetadata{NetRevenueRetention: *in.NetRevenueRetention},
		})
	}

	return alerts
}

// healthAlert maps the health grade to exactly one runway alert.
func healthAlert(health HealthStatus, now time.Time) Alert {
	a := Alert{
		ID:          uuid.NewString(),
		Timestamp:   now,
		Description: health.Description,
		Metadata: RunwayMetadata{
			RunwayMonths: health.RunwayMonths,
			Grade:        health.Grade.String(),
		},
	}

	switch health.Grade {
	case GradeA:
		a.Type = AlertRunwayHealthy
		a.Severity = SeverityInfo
		a.Title = fmt.Sprintf("Runway healthy (%.0f months)", health.RunwayMonths)
	case GradeB:
		a.Type = AlertRunwayWarning
		a.Severity = SeverityWarning
		a.Title = fmt.Sprintf("Runway needs attention (%.0f months)", health.RunwayMonths)
	default:
		a.Type = AlertRunwayCritical
		a.Severity = SeverityCritical
		a.Title = fmt.Sprintf("Runway critical (%.0f months)", health.RunwayMonths)
	}

	return a
}
