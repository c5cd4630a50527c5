package engine

import "time"

// AnalyzeInput bundles everything a full burn analysis needs.
type AnalyzeInput struct {
	Params        SimulationParams
	HorizonMonths int // 0 means DefaultHorizonMonths

	// NetRevenueRetention is an optional external signal fed through to
	// alert synthesis; nil when unavailable.
	NetRevenueRetention *float64
}

// BurnReport is the combined output of one analysis pass.
type BurnReport struct {
	Result                *SimulationResult
	Health                HealthStatus
	BurnSpike             BurnSpikeResult
	Alerts                []Alert
	BurnTrend             BurnTrend
	AverageNetBurn        float64
	CurrentNetBurn        float64
	MonthsToProfitability *int
}

// AnalyzeBurn runs the whole pipeline: simulate, then grade, classify the
// trend, scan for spikes, and synthesize alerts. Each call is a pure
// re-derivation from fresh inputs; nothing is cached or carried between
// calls.
func AnalyzeBurn(in AnalyzeInput) (*BurnReport, error) {
	return analyzeBurnFrom(in, time.Now())
}

func analyzeBurnFrom(in AnalyzeInput, start time.Time) (*BurnReport, error) {
	horizon := in.HorizonMonths
	if horizon == 0 {
		horizon = DefaultHorizonMonths
	}

	result, err := SimulateFrom(in.Params, horizon, start)
	if err != nil {
		return nil, err
	}

	health := EvaluateRunwayHealth(float64(result.RunwayMonths))
	spike := DetectBurnSpike(result.Points)
	trend := AnalyzeBurnTrend(result.Points)

	profitLabel := ""
	if result.ProfitabilityMonthIndex != nil {
		profitLabel = result.Points[*result.ProfitabilityMonthIndex].MonthLabel
	}

	alerts := SynthesizeAlerts(AlertInputs{
		Health:              health,
		Spike:               spike,
		Profitability:       result.ProfitabilityMonthIndex,
		ProfitLabel:         profitLabel,
		HorizonMonths:       horizon,
		NetRevenueRetention: in.NetRevenueRetention,
	})

	return &BurnReport{
		Result:                result,
		Health:                health,
		BurnSpike:             spike,
		Alerts:                alerts,
		BurnTrend:             trend,
		AverageNetBurn:        result.AverageNetBurn,
		CurrentNetBurn:        result.Points[0].NetBurn,
		MonthsToProfitability: result.ProfitabilityMonthIndex,
	}, nil
}
