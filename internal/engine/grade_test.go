package engine

import "testing"

func TestEvaluateRunwayHealthBoundaries(t *testing.T) {
	cases := []struct {
		runway float64
		want   Grade
	}{
		{24, GradeA},
		{18.0000001, GradeA},
		{18.0, GradeA}, // boundary is inclusive on the healthy side
		{17.999, GradeB},
		{6.0, GradeB},
		{5.999, GradeC},
		{0, GradeC},
		{-3, GradeC},
	}

	for _, tc := range cases {
		got := EvaluateRunwayHealth(tc.runway)
		if got.Grade != tc.want {
			t.Fatalf("runway %.7f: grade = %s, want %s", tc.runway, got.Grade, tc.want)
		}
	}
}

func TestEvaluateRunwayHealthLabels(t *testing.T) {
	if h := EvaluateRunwayHealth(20); h.Label != "Healthy" {
		t.Fatalf("label = %q, want Healthy", h.Label)
	}
	if h := EvaluateRunwayHealth(10); h.Label != "Caution" {
		t.Fatalf("label = %q, want Caution", h.Label)
	}
	if h := EvaluateRunwayHealth(2); h.Label != "Critical" {
		t.Fatalf("label = %q, want Critical", h.Label)
	}
	if h := EvaluateRunwayHealth(0); h.Description != "Critical: cash depleted" {
		t.Fatalf("depleted description = %q", h.Description)
	}
}

func TestGradeOrdering(t *testing.T) {
	if !GradeA.Better(GradeB) || !GradeB.Better(GradeC) {
		t.Fatal("grade ordering broken: want A > B > C")
	}
	if GradeC.Better(GradeA) {
		t.Fatal("C ranked above A")
	}
	order := []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}
	for i := 1; i < len(order); i++ {
		if !order[i-1].Better(order[i]) {
			t.Fatalf("%s not better than %s", order[i-1], order[i])
		}
	}
}

func TestFiveGradePolicyZeroBurnWithCash(t *testing.T) {
	h := FiveGradePolicy{}.Evaluate(GradeInput{
		RunwayMonths: 3, // would be F by runway alone
		MonthlyBurn:  -5_000,
		CashOnHand:   50_000,
	})
	if h.Grade != GradeA {
		t.Fatalf("profitable with cash graded %s, want A", h.Grade)
	}
}

func TestFiveGradePolicyRunwayBands(t *testing.T) {
	cases := []struct {
		runway float64
		want   Grade
	}{
		{30, GradeA},
		{24, GradeA},
		{20, GradeB},
		{14, GradeC},
		{8, GradeD},
		{3, GradeF},
	}

	for _, tc := range cases {
		h := FiveGradePolicy{}.Evaluate(GradeInput{
			RunwayMonths: tc.runway,
			MonthlyBurn:  10_000,
			CashOnHand:   100_000,
		})
		if h.Grade != tc.want {
			t.Fatalf("runway %.0f: grade = %s, want %s", tc.runway, h.Grade, tc.want)
		}
	}
}

func TestFiveGradePolicyMarginLift(t *testing.T) {
	// 14 months of runway is a C; a 20% margin lifts it to B.
	h := FiveGradePolicy{}.Evaluate(GradeInput{
		RunwayMonths: 14,
		ProfitMargin: 0.25,
		MonthlyBurn:  10_000,
		CashOnHand:   100_000,
	})
	if h.Grade != GradeB {
		t.Fatalf("margin-lifted grade = %s, want B", h.Grade)
	}

	// The lift caps at A.
	h = FiveGradePolicy{}.Evaluate(GradeInput{
		RunwayMonths: 30,
		ProfitMargin: 0.50,
		MonthlyBurn:  10_000,
		CashOnHand:   100_000,
	})
	if h.Grade != GradeA {
		t.Fatalf("capped grade = %s, want A", h.Grade)
	}
}

func TestPoliciesDiverge(t *testing.T) {
	// The two policies are intentionally unreconciled: 20 months of runway
	// is an A under the three-grade policy but a B under five-grade.
	in := GradeInput{RunwayMonths: 20, MonthlyBurn: 10_000, CashOnHand: 200_000}
	three := ThreeGradePolicy{}.Evaluate(in)
	five := FiveGradePolicy{}.Evaluate(in)
	if three.Grade != GradeA || five.Grade != GradeB {
		t.Fatalf("three = %s, five = %s; want A and B", three.Grade, five.Grade)
	}
}
