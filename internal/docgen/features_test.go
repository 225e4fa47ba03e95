// File path: internal/docgen/features_test.go
package docgen

import (
	"testing"

	"github.com/rfplab/rfpgen/internal/rfp"
)

func feature(name string) rfp.FeatureItem {
	return rfp.FeatureItem{Name: name, Description: name, Priority: rfp.PriorityP1}
}

func TestAnalyzeFeatureKnownComplexities(t *testing.T) {
	cases := []struct {
		name       string
		complexity int
	}{
		{"로그인", 2},
		{"결제", 4},
		{"채팅", 4},
		{"관리자 페이지", 3},
		{"푸시 알림", 2},
		{"AI 챗봇", 5},
	}
	for _, tc := range cases {
		a := AnalyzeFeature(feature(tc.name))
		if a.Complexity != tc.complexity {
			t.Errorf("%s: complexity %d, want %d", tc.name, a.Complexity, tc.complexity)
		}
		if len(a.SubFeatures) == 0 || len(a.Acceptance) == 0 {
			t.Errorf("%s: missing knowledge-table detail", tc.name)
		}
	}
}

func TestAnalyzeFeatureGenericDefaults(t *testing.T) {
	a := AnalyzeFeature(feature("타임캡슐 공유"))
	if a.Complexity != 3 {
		t.Errorf("generic complexity %d, want 3", a.Complexity)
	}
	if a.WeeksLow != 2 || a.WeeksHigh != 3 {
		t.Errorf("generic estimate %d~%d, want 2~3", a.WeeksLow, a.WeeksHigh)
	}
	if len(a.SubFeatures) == 0 {
		t.Error("generic analysis should still carry sub-items")
	}
}

func TestComplexityForTypicalCommerceScenario(t *testing.T) {
	analyses := AnalyzeFeatures([]rfp.FeatureItem{feature("로그인"), feature("결제"), feature("채팅")})
	want := []int{2, 4, 4}
	for i, a := range analyses {
		if a.Complexity != want[i] {
			t.Errorf("feature %d complexity %d, want %d", i, a.Complexity, want[i])
		}
	}
	total := TotalComplexity(analyses)
	if total != 10 {
		t.Fatalf("total complexity %d, want 10", total)
	}
	if got := ComplexityLabel(total); got != "중간~높음" {
		t.Errorf("label %q, want 중간~높음", got)
	}
}

func TestComplexityBuckets(t *testing.T) {
	cases := map[int]string{
		0:  "낮음~중간",
		3:  "낮음~중간",
		4:  "중간",
		7:  "중간",
		8:  "중간~높음",
		14: "중간~높음",
		15: "높음",
		40: "높음",
	}
	for total, want := range cases {
		if got := ComplexityLabel(total); got != want {
			t.Errorf("ComplexityLabel(%d) = %q, want %q", total, got, want)
		}
	}
}

func TestEstimateDurationFloorsAndDiscounts(t *testing.T) {
	// No features: floors apply.
	d := EstimateDuration(nil)
	if d.WeeksLow != 4 || d.WeeksHigh != 6 {
		t.Errorf("empty estimate %d~%d, want 4~6", d.WeeksLow, d.WeeksHigh)
	}

	// Many features: parallelization discount applies to the sums.
	analyses := AnalyzeFeatures([]rfp.FeatureItem{
		feature("로그인"), feature("결제"), feature("채팅"), feature("검색"), feature("추천"),
	})
	sumLow, sumHigh := 0, 0
	for _, a := range analyses {
		sumLow += a.WeeksLow
		sumHigh += a.WeeksHigh
	}
	d = EstimateDuration(analyses)
	if d.WeeksLow != int(float64(sumLow)*0.6) {
		t.Errorf("low bound %d, want %d", d.WeeksLow, int(float64(sumLow)*0.6))
	}
	if d.WeeksHigh != int(float64(sumHigh)*0.7) {
		t.Errorf("high bound %d, want %d", d.WeeksHigh, int(float64(sumHigh)*0.7))
	}
	if d.WeeksLow > d.WeeksHigh {
		t.Errorf("bounds inverted: %d~%d", d.WeeksLow, d.WeeksHigh)
	}
}
