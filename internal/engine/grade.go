package engine

// Grade is an ordinal health grade. Lower values are better; grades are
// compared, never used for arithmetic.
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeF
)

// String returns the letter symbol for the grade.
func (g Grade) String() string {
	switch g {
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	case GradeC:
		return "C"
	case GradeD:
		return "D"
	case GradeF:
		return "F"
	}
	return "?"
}

// Better reports whether g outranks other.
func (g Grade) Better(other Grade) bool {
	return g < other
}

// HealthStatus is the graded read on a company's runway.
type HealthStatus struct {
	Grade        Grade
	RunwayMonths float64
	Label        string
	Description  string
	Color        string // hex color for display surfaces
}

// GradeInput carries everything either grading policy may weigh.
type GradeInput struct {
	RunwayMonths float64
	ProfitMargin float64 // (revenue - expenses) / revenue, current month
	MonthlyBurn  float64 // current net burn; <= 0 means profitable
	CashOnHand   float64
}

// GradingPolicy maps financial posture to a HealthStatus. Two policies ship
// and their thresholds deliberately diverge; callers pick one explicitly.
type GradingPolicy interface {
	Name() string
	Evaluate(in GradeInput) HealthStatus
}

// ThreeGradePolicy is the canonical runway-only policy: A from 18 months up,
// B from 6 up to 18, C below 6.
type ThreeGradePolicy struct{}

// Name implements GradingPolicy.
func (ThreeGradePolicy) Name() string { return "three-grade" }

// Evaluate implements GradingPolicy. The boundaries are inclusive on the
// healthier side: 18.0 is Healthy and 6.0 is Caution.
func (ThreeGradePolicy) Evaluate(in GradeInput) HealthStatus {
	runway := in.RunwayMonths
	switch {
	case runway >= 18:
		return HealthStatus{
			Grade:        GradeA,
			RunwayMonths: runway,
			Label:        "Healthy",
			Description:  "Runway of 18 months or more",
			Color:        "#879A39",
		}
	case runway >= 6:
		return HealthStatus{
			Grade:        GradeB,
			RunwayMonths: runway,
			Label:        "Caution",
			Description:  "Runway between 6 and 18 months",
			Color:        "#D0A215",
		}
	case runway <= 0:
		return HealthStatus{
			Grade:        GradeC,
			RunwayMonths: runway,
			Label:        "Critical",
			Description:  "Critical: cash depleted",
			Color:        "#D14D41",
		}
	default:
		return HealthStatus{
			Grade:        GradeC,
			RunwayMonths: runway,
			Label:        "Critical",
			Description:  "Runway below 6 months",
			Color:        "#D14D41",
		}
	}
}

// FiveGradePolicy is the wider A-F policy that also weighs profit margin,
// burn, and cash. Zero burn with cash in the bank is an automatic A; a
// profit margin of 20% or better lifts the runway grade one step.
type FiveGradePolicy struct{}

// Name implements GradingPolicy.
func (FiveGradePolicy) Name() string { return "five-grade" }

// Evaluate implements GradingPolicy.
func (FiveGradePolicy) Evaluate(in GradeInput) HealthStatus {
	if in.MonthlyBurn <= 0 && in.CashOnHand > 0 {
		return HealthStatus{
			Grade:        GradeA,
			RunwayMonths: in.RunwayMonths,
			Label:        "Excellent",
			Description:  "Profitable with cash in the bank",
			Color:        "#879A39",
		}
	}

	grade := GradeF
	switch {
	case in.RunwayMonths >= 24:
		grade = GradeA
	case in.RunwayMonths >= 18:
		grade = GradeB
	case in.RunwayMonths >= 12:
		grade = GradeC
	case in.RunwayMonths >= 6:
		grade = GradeD
	}

	if in.ProfitMargin >= 0.20 && grade > GradeA {
		grade--
	}

	label, desc, color := fiveGradeDisplay(grade)
	return HealthStatus{
		Grade:        grade,
		RunwayMonths: in.RunwayMonths,
		Label:        label,
		Description:  desc,
		Color:        color,
	}
}

func fiveGradeDisplay(g Grade) (label, desc, color string) {
	switch g {
	case GradeA:
		return "Excellent", "Two years or more of runway", "#879A39"
	case GradeB:
		return "Good", "Comfortable runway, keep watching burn", "#879A39"
	case GradeC:
		return "Fair", "A year of runway; plan the next raise", "#D0A215"
	case GradeD:
		return "Poor", "Under a year of runway", "#DA702C"
	default:
		return "Failing", "Runway under six months", "#D14D41"
	}
}

// EvaluateRunwayHealth grades a runway length under the canonical
// three-grade policy. It is a total function over the reals, including
// negative runway and the horizon-saturation value.
func EvaluateRunwayHealth(runwayMonths float64) HealthStatus {
	return ThreeGradePolicy{}.Evaluate(GradeInput{RunwayMonths: runwayMonths})
}
