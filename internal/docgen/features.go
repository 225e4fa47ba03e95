// File path: internal/docgen/features.go
package docgen

import (
	"fmt"
	"strings"

	"github.com/rfplab/rfpgen/internal/rfp"
)

// FeatureAnalysis is the market-data annotation attached to one submitted
// feature when the document is assembled.
type FeatureAnalysis struct {
	Feature        rfp.FeatureItem
	Complexity     int
	WeeksLow       int
	WeeksHigh      int
	SubFeatures    []string
	Considerations []string
	Acceptance     []string
}

type featureKnowledge struct {
	keywords       []string
	complexity     int
	weeksLow       int
	weeksHigh      int
	subFeatures    []string
	considerations []string
	acceptance     []string
}

// Substring-matched against the feature name, first match wins.
var featureKnowledgeTable = []featureKnowledge{
	{
		keywords:   []string{"로그인", "인증", "소셜"},
		complexity: 2, weeksLow: 1, weeksHigh: 2,
		subFeatures:    []string{"이메일/비밀번호 로그인", "소셜 로그인(카카오/네이버/구글)", "비밀번호 재설정"},
		considerations: []string{"소셜 로그인별 심사 및 키 발급 기간을 일정에 반영해야 합니다"},
		acceptance:     []string{"로그인 실패 5회 시 안내 노출", "소셜 계정 연동 해제 가능"},
	},
	{
		keywords:   []string{"회원", "멤버십", "프로필"},
		complexity: 2, weeksLow: 1, weeksHigh: 2,
		subFeatures:    []string{"회원가입/탈퇴", "프로필 관리", "등급/멤버십 관리"},
		considerations: []string{"개인정보 수집 항목 최소화 및 동의 절차가 필요합니다"},
		acceptance:     []string{"탈퇴 시 개인정보 파기 처리", "프로필 수정 즉시 반영"},
	},
	{
		keywords:   []string{"결제", "페이", "정산", "환불"},
		complexity: 4, weeksLow: 2, weeksHigh: 4,
		subFeatures:    []string{"PG 연동", "결제 내역 조회", "취소/환불 처리", "정산 리포트"},
		considerations: []string{"PG사 계약 및 심사에 2~4주가 소요됩니다", "부분 취소/부분 환불 정책을 사전에 정의해야 합니다"},
		acceptance:     []string{"결제 실패 시 주문 상태 복원", "환불 처리 결과 알림 발송"},
	},
	{
		keywords:   []string{"채팅", "메시지", "상담", "쪽지"},
		complexity: 4, weeksLow: 2, weeksHigh: 4,
		subFeatures:    []string{"1:1 실시간 채팅", "이미지/파일 전송", "읽음 표시", "신고/차단"},
		considerations: []string{"실시간 서버 인프라 비용이 사용자 수에 비례해 증가합니다"},
		acceptance:     []string{"오프라인 수신 메시지 푸시 전달", "차단한 상대의 메시지 미노출"},
	},
	{
		keywords:   []string{"관리자", "어드민", "백오피스", "cms"},
		complexity: 3, weeksLow: 2, weeksHigh: 3,
		subFeatures:    []string{"회원 관리", "콘텐츠 관리", "통계 대시보드", "권한 관리"},
		considerations: []string{"운영 시나리오를 먼저 정의해야 화면 수가 불어나지 않습니다"},
		acceptance:     []string{"관리자 권한별 메뉴 접근 제어", "주요 운영 지표 일 단위 집계"},
	},
	{
		keywords:   []string{"알림", "푸시", "공지"},
		complexity: 2, weeksLow: 1, weeksHigh: 2,
		subFeatures:    []string{"푸시 알림", "알림함", "수신 설정"},
		considerations: []string{"야간 광고성 알림은 정보통신망법상 별도 동의가 필요합니다"},
		acceptance:     []string{"알림 유형별 on/off 설정 반영", "미수신 단말 재발송 처리"},
	},
	{
		keywords:   []string{"검색", "필터"},
		complexity: 3, weeksLow: 1, weeksHigh: 3,
		subFeatures:    []string{"키워드 검색", "필터/정렬", "최근 검색어"},
		considerations: []string{"데이터가 늘어나면 검색엔진(엘라스틱서치 등) 도입 시점을 검토해야 합니다"},
		acceptance:     []string{"검색 결과 1초 이내 응답", "오타 시 제안 검색어 노출"},
	},
	{
		keywords:   []string{"지도", "위치", "gps"},
		complexity: 3, weeksLow: 2, weeksHigh: 3,
		subFeatures:    []string{"지도 표시", "현재 위치 기반 조회", "주소 검색"},
		considerations: []string{"지도 API 호출량 과금 구조를 예산에 반영해야 합니다"},
		acceptance:     []string{"위치 권한 거부 시 대체 플로우 제공", "지도 마커 클러스터링"},
	},
	{
		keywords:   []string{"ai", "인공지능", "챗봇", "gpt"},
		complexity: 5, weeksLow: 3, weeksHigh: 6,
		subFeatures:    []string{"모델 API 연동", "프롬프트 설계", "응답 품질 모니터링"},
		considerations: []string{"모델 API 사용량 비용이 운영비로 지속 발생합니다", "오답/환각 대응 정책이 필요합니다"},
		acceptance:     []string{"모델 장애 시 대체 응답 제공", "부적절 응답 신고 수집"},
	},
	{
		keywords:   []string{"추천", "개인화", "큐레이션"},
		complexity: 4, weeksLow: 2, weeksHigh: 4,
		subFeatures:    []string{"행동 데이터 수집", "추천 알고리즘", "추천 영역 노출"},
		considerations: []string{"초기에는 규칙 기반으로 시작하고 데이터 축적 후 고도화하는 것이 경제적입니다"},
		acceptance:     []string{"신규 사용자 콜드스타트 대응", "추천 클릭률 측정 가능"},
	},
}

const (
	genericComplexity = 3
	genericWeeksLow   = 2
	genericWeeksHigh  = 3
)

// AnalyzeFeature attaches complexity and estimate data from the knowledge
// table, falling back to generic defaults when the name matches nothing.
func AnalyzeFeature(item rfp.FeatureItem) FeatureAnalysis {
	name := strings.ToLower(strings.TrimSpace(item.Name))
	for _, entry := range featureKnowledgeTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				return FeatureAnalysis{
					Feature:        item,
					Complexity:     entry.complexity,
					WeeksLow:       entry.weeksLow,
					WeeksHigh:      entry.weeksHigh,
					SubFeatures:    append([]string(nil), entry.subFeatures...),
					Considerations: append([]string(nil), entry.considerations...),
					Acceptance:     append([]string(nil), entry.acceptance...),
				}
			}
		}
	}
	return FeatureAnalysis{
		Feature:    item,
		Complexity: genericComplexity,
		WeeksLow:   genericWeeksLow,
		WeeksHigh:  genericWeeksHigh,
		SubFeatures: []string{
			"상세 기능 정의",
			"화면 설계 및 구현",
			"테스트 및 안정화",
		},
		Considerations: []string{"요구사항 상세화 미팅에서 범위를 먼저 확정해야 합니다"},
		Acceptance:     []string{"정의된 시나리오 기준 동작 확인"},
	}
}

// AnalyzeFeatures annotates every submitted feature in order.
func AnalyzeFeatures(items []rfp.FeatureItem) []FeatureAnalysis {
	out := make([]FeatureAnalysis, 0, len(items))
	for _, item := range items {
		out = append(out, AnalyzeFeature(item))
	}
	return out
}

// Duration is the aggregated schedule estimate in weeks.
type Duration struct {
	WeeksLow  int
	WeeksHigh int
}

// Feature work overlaps rather than serializing, so the summed estimates get
// a parallelization discount before flooring at a practical minimum.
const (
	parallelFactorLow  = 0.6
	parallelFactorHigh = 0.7
	minWeeksLow        = 4
	minWeeksHigh       = 6
)

// EstimateDuration sums the per-feature bounds, applies the parallelization
// discount, and floors the result.
func EstimateDuration(analyses []FeatureAnalysis) Duration {
	sumLow, sumHigh := 0, 0
	for _, a := range analyses {
		sumLow += a.WeeksLow
		sumHigh += a.WeeksHigh
	}
	low := int(float64(sumLow) * parallelFactorLow)
	high := int(float64(sumHigh) * parallelFactorHigh)
	if low < minWeeksLow {
		low = minWeeksLow
	}
	if high < minWeeksHigh {
		high = minWeeksHigh
	}
	return Duration{WeeksLow: low, WeeksHigh: high}
}

func (d Duration) String() string {
	return fmt.Sprintf("%d~%d주", d.WeeksLow, d.WeeksHigh)
}

// TotalComplexity sums the per-feature complexity scores.
func TotalComplexity(analyses []FeatureAnalysis) int {
	total := 0
	for _, a := range analyses {
		total += a.Complexity
	}
	return total
}

// ComplexityLabel buckets a total complexity score into the four fixed tiers.
func ComplexityLabel(total int) string {
	switch {
	case total <= 3:
		return "낮음~중간"
	case total <= 7:
		return "중간"
	case total <= 14:
		return "중간~높음"
	default:
		return "높음"
	}
}
