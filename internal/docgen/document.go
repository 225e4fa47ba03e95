// File path: internal/docgen/document.go
package docgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/rfplab/rfpgen/internal/rfp"
)

const unspecified = "미정"

// Document is the rendered RFP plus its generation stamp.
type Document struct {
	Content     string
	GeneratedAt time.Time
}

// Generate deterministically renders a complete RFP document from an answer
// record snapshot. Given the same record and timestamp the output is
// byte-identical; every empty field degrades to a placeholder instead of
// failing. The language model is never consulted here.
func Generate(rec rfp.AnswerRecord, now time.Time) Document {
	archetype := ClassifyProject(rec.Overview)
	analyses := AnalyzeFeatures(rec.CoreFeatures)
	duration := EstimateDuration(analyses)
	totalComplexity := TotalComplexity(analyses)

	b := &strings.Builder{}
	fmt.Fprintf(b, "# 프로젝트 RFP (제안요청서)\n\n")
	fmt.Fprintf(b, "- 생성일: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(b, "- 프로젝트 유형: %s\n\n", archetype.Name)

	writeExecutiveSummary(b, archetype, analyses, duration, totalComplexity)
	writeOverview(b, rec, archetype)
	writeTargetUsers(b, rec)
	writeFeatureRequirements(b, analyses)
	writeReferenceServices(b, rec)
	writeTechRequirements(b, rec, archetype)
	writeDesignRequirements(b, rec, analyses)
	writeScheduleAndBudget(b, archetype, duration)
	writeAdditionalRequirements(b, rec)
	writeRoadmap(b, archetype)
	writeBudgetTips(b, archetype)
	writeRiskMatrix(b, archetype, analyses)
	writeVendorGuide(b)
	writeContractChecklist(b)

	return Document{Content: strings.TrimSpace(b.String()) + "\n", GeneratedAt: now}
}

func orUnspecified(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return unspecified
	}
	return trimmed
}

func writeExecutiveSummary(b *strings.Builder, a Archetype, analyses []FeatureAnalysis, d Duration, totalComplexity int) {
	b.WriteString("## 1. 경영진 요약\n\n")
	fmt.Fprintf(b, "본 프로젝트는 %s 유형으로 분류되며, 제출된 핵심 기능은 %d건입니다.\n", a.Name, len(analyses))
	fmt.Fprintf(b, "- 종합 복잡도: %d점 (%s)\n", totalComplexity, ComplexityLabel(totalComplexity))
	fmt.Fprintf(b, "- 예상 개발 기간: %s\n", d)
	fmt.Fprintf(b, "- 시장 평균 예산대: %s\n", a.BudgetRange)
	fmt.Fprintf(b, "- 시장 참고: %s\n\n", a.MarketInsight)
}

func writeOverview(b *strings.Builder, rec rfp.AnswerRecord, a Archetype) {
	b.WriteString("## 2. 프로젝트 개요\n\n")
	fmt.Fprintf(b, "%s\n\n", orUnspecified(rec.Overview))
	fmt.Fprintf(b, "유사 유형(%s) 프로젝트의 일반적인 구축 기간은 %s입니다.\n\n", a.Name, a.TypicalWeeks)
}

func writeTargetUsers(b *strings.Builder, rec rfp.AnswerRecord) {
	b.WriteString("## 3. 타겟 사용자\n\n")
	fmt.Fprintf(b, "%s\n\n", orUnspecified(rec.TargetUsers))
}

func writeFeatureRequirements(b *strings.Builder, analyses []FeatureAnalysis) {
	b.WriteString("## 4. 핵심 기능 요구사항\n\n")
	if len(analyses) == 0 {
		b.WriteString(unspecified + " — 기능 목록이 제출되지 않았습니다. 상세 미팅에서 확정이 필요합니다.\n\n")
		return
	}
	for _, tier := range []rfp.Priority{rfp.PriorityP1, rfp.PriorityP2, rfp.PriorityP3} {
		group := filterByPriority(analyses, tier)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s (%s)\n\n", tierHeading(tier), tier)
		for _, a := range group {
			fmt.Fprintf(b, "#### %s\n\n", a.Feature.Name)
			if a.Feature.Description != "" && a.Feature.Description != a.Feature.Name {
				fmt.Fprintf(b, "%s\n\n", a.Feature.Description)
			}
			fmt.Fprintf(b, "- 복잡도: %d/5\n", a.Complexity)
			fmt.Fprintf(b, "- 예상 기간: %d~%d주\n", a.WeeksLow, a.WeeksHigh)
			writeBullets(b, "세부 기능", a.SubFeatures)
			writeBullets(b, "구현 시 고려사항", a.Considerations)
			writeBullets(b, "검수 기준", a.Acceptance)
			b.WriteString("\n")
		}
	}
}

func tierHeading(p rfp.Priority) string {
	switch p {
	case rfp.PriorityP1:
		return "필수 기능"
	case rfp.PriorityP2:
		return "중요 기능"
	default:
		return "선택 기능"
	}
}

func filterByPriority(analyses []FeatureAnalysis, p rfp.Priority) []FeatureAnalysis {
	out := make([]FeatureAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if a.Feature.Priority == p {
			out = append(out, a)
		}
	}
	return out
}

func writeBullets(b *strings.Builder, label string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s:\n", label)
	for _, line := range lines {
		fmt.Fprintf(b, "  - %s\n", line)
	}
}

func writeReferenceServices(b *strings.Builder, rec rfp.AnswerRecord) {
	b.WriteString("## 5. 참고 서비스\n\n")
	if strings.TrimSpace(rec.ReferenceServices) == "" {
		b.WriteString("제출된 참고 서비스가 없습니다. 업체 선정 후 벤치마킹 대상을 함께 정의하는 것을 권장합니다.\n")
		b.WriteString("- 동일 카테고리 상위 3개 서비스의 핵심 플로우를 비교해 주세요.\n")
		b.WriteString("- 차별화 포인트를 1~2개로 좁혀야 초기 범위가 관리됩니다.\n\n")
		return
	}
	fmt.Fprintf(b, "%s\n\n", strings.TrimSpace(rec.ReferenceServices))
	b.WriteString("벤치마킹 가이드:\n")
	b.WriteString("- 참고 서비스에서 가져올 요소와 답습하지 않을 요소를 구분해 주세요.\n")
	b.WriteString("- 화면 단위가 아니라 사용자 플로우 단위로 비교하는 것이 효과적입니다.\n\n")
}

func writeTechRequirements(b *strings.Builder, rec rfp.AnswerRecord, a Archetype) {
	b.WriteString("## 6. 기술 요구사항\n\n")
	fmt.Fprintf(b, "%s\n\n", orUnspecified(rec.TechRequirements))
	writeBullets(b, "이 유형에서 자주 쓰이는 기술 조합", a.TechStacks)
	b.WriteString("\n")
}

// Demographic signals in the target-user text select one UI guideline block;
// payment-related feature names add a compliance subsection.
func writeDesignRequirements(b *strings.Builder, rec rfp.AnswerRecord, analyses []FeatureAnalysis) {
	b.WriteString("## 7. 디자인 요구사항\n\n")
	writeBullets(b, audienceHeading(rec.TargetUsers), audienceGuidelines(rec.TargetUsers))
	b.WriteString("\n")
	if hasPaymentFeature(analyses) {
		b.WriteString("### 결제 연동 및 컴플라이언스\n\n")
		b.WriteString("- PG사 연동 규격에 맞춘 결제 화면 구성이 필요합니다.\n")
		b.WriteString("- 전자금융거래법상 결제 내역 고지 및 취소 경로를 화면에 노출해야 합니다.\n")
		b.WriteString("- 카드 정보는 비저장(PG 토큰화) 방식을 기본으로 합니다.\n\n")
	}
}

func audienceHeading(targetUsers string) string {
	switch audienceClass(targetUsers) {
	case "senior":
		return "시니어 사용자 UI 가이드"
	case "young":
		return "MZ세대 사용자 UI 가이드"
	case "enterprise":
		return "B2B/기업 사용자 UI 가이드"
	default:
		return "일반 사용자 UI 가이드"
	}
}

func audienceClass(targetUsers string) string {
	haystack := strings.ToLower(targetUsers)
	senior := []string{"시니어", "노년", "50대", "60대", "70대", "어르신"}
	young := []string{"mz", "z세대", "10대", "20대", "2030", "젊은"}
	enterprise := []string{"b2b", "기업", "법인", "사내", "직원용"}
	for _, kw := range senior {
		if strings.Contains(haystack, kw) {
			return "senior"
		}
	}
	for _, kw := range young {
		if strings.Contains(haystack, kw) {
			return "young"
		}
	}
	for _, kw := range enterprise {
		if strings.Contains(haystack, kw) {
			return "enterprise"
		}
	}
	return "general"
}

func audienceGuidelines(targetUsers string) []string {
	switch audienceClass(targetUsers) {
	case "senior":
		return []string{
			"본문 최소 16px 이상, 주요 버튼은 화면 폭에 가깝게 크게 배치",
			"단계별 안내 문구를 화면마다 제공",
			"전화 연결 등 비대면 외 보조 채널 노출",
		}
	case "young":
		return []string{
			"빠른 온보딩(3단계 이내)과 소셜 로그인 우선",
			"다크모드 지원 및 모션/인터랙션 활용",
			"공유하기 등 바이럴 동선 내장",
		}
	case "enterprise":
		return []string{
			"밀도 높은 정보 테이블과 일괄 처리 액션",
			"권한(역할)별 화면 구성 분리",
			"엑셀 다운로드 등 업무 연계 기능",
		}
	default:
		return []string{
			"모바일 우선 반응형 레이아웃",
			"핵심 액션 1개에 집중한 화면 구성",
			"웹 접근성(WCAG AA) 기본 준수",
		}
	}
}

func hasPaymentFeature(analyses []FeatureAnalysis) bool {
	for _, a := range analyses {
		name := strings.ToLower(a.Feature.Name)
		for _, kw := range []string{"결제", "페이", "구독", "정산", "환불"} {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}

func writeScheduleAndBudget(b *strings.Builder, a Archetype, d Duration) {
	b.WriteString("## 8. 일정 및 예산\n\n")
	fmt.Fprintf(b, "- 예상 개발 기간: %s (기능 병행 개발 기준)\n", d)
	fmt.Fprintf(b, "- 시장 평균 예산대: %s\n\n", a.BudgetRange)
	b.WriteString("### 마일스톤 (6단계)\n\n")
	for i, m := range buildMilestones(d) {
		fmt.Fprintf(b, "%d. %s — %s\n", i+1, m.name, m.weeks)
	}
	b.WriteString("\n")
}

type milestone struct {
	name  string
	weeks string
}

// The two development milestones absorb the aggregated estimate; the fixed
// phases around them do not scale with feature count.
func buildMilestones(d Duration) []milestone {
	coreLow := d.WeeksLow / 2
	if coreLow < 2 {
		coreLow = 2
	}
	coreHigh := d.WeeksHigh / 2
	if coreHigh < coreLow {
		coreHigh = coreLow
	}
	restLow := d.WeeksLow - coreLow
	if restLow < 1 {
		restLow = 1
	}
	restHigh := d.WeeksHigh - coreHigh
	if restHigh < restLow {
		restHigh = restLow
	}
	return []milestone{
		{name: "킥오프 및 요구사항 확정", weeks: "1주"},
		{name: "화면 설계 및 디자인", weeks: "2~3주"},
		{name: "핵심 기능 개발", weeks: fmt.Sprintf("%d~%d주", coreLow, coreHigh)},
		{name: "부가 기능 개발 및 연동", weeks: fmt.Sprintf("%d~%d주", restLow, restHigh)},
		{name: "통합 테스트 및 QA", weeks: "2주"},
		{name: "오픈 준비 및 배포", weeks: "1주"},
	}
}

func writeAdditionalRequirements(b *strings.Builder, rec rfp.AnswerRecord) {
	b.WriteString("## 9. 추가 요구사항\n\n")
	fmt.Fprintf(b, "%s\n\n", orUnspecified(rec.AdditionalRequirements))
}

func writeRoadmap(b *strings.Builder, a Archetype) {
	b.WriteString("## 10. 오픈 이후 로드맵\n\n")
	b.WriteString("- 1단계 (오픈 ~ 3개월): 핵심 지표 계측, 사용자 피드백 기반 개선\n")
	b.WriteString("- 2단계 (3 ~ 6개월): 이탈 구간 개선, 운영 자동화\n")
	b.WriteString("- 3단계 (6개월 이후): 수익화 고도화 및 확장 기능 착수\n\n")
	writeBullets(b, "이 유형에서 자주 누락되는 기능", a.MissedFeatures)
	b.WriteString("\n")
}

func writeBudgetTips(b *strings.Builder, a Archetype) {
	b.WriteString("## 11. 예산 최적화 팁\n\n")
	b.WriteString("- P1 기능만으로 1차 오픈 범위를 구성하면 초기 예산을 30% 이상 줄일 수 있습니다.\n")
	b.WriteString("- 관리자 화면은 템플릿 기반 구축으로 비용을 절감할 수 있습니다.\n")
	b.WriteString("- 디자인 시안 수를 계약서에 명시하면 수정 비용 분쟁을 예방합니다.\n")
	fmt.Fprintf(b, "- 참고: %s\n\n", a.MarketInsight)
}

func writeRiskMatrix(b *strings.Builder, a Archetype, analyses []FeatureAnalysis) {
	b.WriteString("## 12. 리스크 매트릭스\n\n")
	b.WriteString("| 리스크 | 발생 가능성 | 영향도 | 대응 방안 |\n")
	b.WriteString("|---|---|---|---|\n")
	b.WriteString("| 요구사항 변경으로 인한 범위 확대 | 높음 | 높음 | 변경 요청 절차와 추가 견적 기준을 계약에 명시 |\n")
	b.WriteString("| 일정 지연 | 중간 | 높음 | 마일스톤별 중간 산출물 검수 |\n")
	for _, risk := range a.Risks {
		fmt.Fprintf(b, "| %s | 중간 | 중간 | 착수 단계에서 선제 확인 |\n", risk)
	}
	if hasPaymentFeature(analyses) {
		b.WriteString("| PG 심사 지연 | 중간 | 높음 | 계약 직후 PG 신청 병행 |\n")
	}
	b.WriteString("\n")
}

func writeVendorGuide(b *strings.Builder) {
	b.WriteString("## 13. 업체 선정 가이드\n\n")
	b.WriteString("- 동일 유형 프로젝트 포트폴리오를 2건 이상 보유한 업체를 우선 검토하세요.\n")
	b.WriteString("- 견적 비교 시 총액이 아니라 범위(화면 수, 기능 수) 기준으로 비교하세요.\n")
	b.WriteString("- 유지보수 조건(무상 기간, 시간당 단가)을 계약 전에 확인하세요.\n")
	b.WriteString("- 커뮤니케이션 주기(주간 보고 등)를 사전에 합의하세요.\n\n")
}

func writeContractChecklist(b *strings.Builder) {
	b.WriteString("## 14. 계약 체크리스트\n\n")
	b.WriteString("- [ ] 산출물 목록과 검수 기준 명시\n")
	b.WriteString("- [ ] 소스코드 및 계정 소유권 명시\n")
	b.WriteString("- [ ] 하자보수 기간과 범위 명시\n")
	b.WriteString("- [ ] 중도 해지 시 정산 기준 명시\n")
	b.WriteString("- [ ] 개인정보 처리 위탁 계약 포함 여부 확인\n")
}
