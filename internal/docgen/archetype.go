// File path: internal/docgen/archetype.go
package docgen

import "strings"

// Archetype is a fixed project-category profile carrying the market reference
// constants used throughout the generated document.
type Archetype struct {
	Name           string
	BudgetRange    string
	TypicalWeeks   string
	TechStacks     []string
	Risks          []string
	MissedFeatures []string
	MarketInsight  string
}

type archetypeRule struct {
	keywords  []string
	archetype Archetype
}

// Evaluated top to bottom, first keyword match wins. Ordering is load-bearing:
// overlapping keywords ("앱" matches inside "웹앱", "거래" inside "거래소")
// would otherwise reclassify, so the more specific archetypes come first.
var archetypeRules = []archetypeRule{
	{
		keywords: []string{"쇼핑몰", "이커머스", "커머스", "쇼핑"},
		archetype: Archetype{
			Name:         "이커머스",
			BudgetRange:  "3,000만원 ~ 8,000만원",
			TypicalWeeks: "10~16주",
			TechStacks: []string{
				"Next.js + NestJS + PostgreSQL",
				"카페24/고도몰 기반 커스터마이징",
			},
			Risks: []string{
				"PG사 심사 지연으로 오픈 일정이 밀리는 경우가 많습니다",
				"상품/재고 데이터 이관 작업이 과소평가되기 쉽습니다",
			},
			MissedFeatures: []string{
				"교환/반품 처리 플로우",
				"재고 연동 및 품절 처리",
				"비회원 주문 조회",
			},
			MarketInsight: "이커머스는 첫 구매 전환율보다 재구매율이 수익성을 좌우하므로 CRM 기능에 초기 투자할 가치가 있습니다.",
		},
	},
	{
		keywords: []string{"구독", "멤버십 서비스", "정기 결제", "정기결제"},
		archetype: Archetype{
			Name:         "구독 서비스",
			BudgetRange:  "2,500만원 ~ 7,000만원",
			TypicalWeeks: "8~14주",
			TechStacks: []string{
				"Next.js + Supabase + 토스페이먼츠 빌링",
				"React Native + Node.js + Stripe Billing",
			},
			Risks: []string{
				"정기 결제 실패 및 재시도 정책을 늦게 설계하면 이탈이 커집니다",
				"해지 방어 플로우가 없으면 초기 이탈률 관리가 어렵습니다",
			},
			MissedFeatures: []string{
				"결제 수단 변경",
				"구독 일시정지",
				"환불 정책 안내 화면",
			},
			MarketInsight: "구독 모델은 월 이탈률 5% 이하 유지가 손익분기의 핵심 지표입니다.",
		},
	},
	{
		keywords: []string{"마켓플레이스", "오픈마켓"},
		archetype: Archetype{
			Name:         "마켓플레이스",
			BudgetRange:  "5,000만원 ~ 1억 2,000만원",
			TypicalWeeks: "14~20주",
			TechStacks: []string{
				"Next.js + Spring Boot + PostgreSQL",
				"React Native + NestJS + Redis",
			},
			Risks: []string{
				"판매자/구매자 양면 시장이라 초기 공급자 확보 전략이 필요합니다",
				"정산 로직과 수수료 정책 변경 비용이 큽니다",
			},
			MissedFeatures: []string{
				"판매자 정산 대시보드",
				"분쟁 조정 프로세스",
				"판매자 입점 심사",
			},
			MarketInsight: "마켓플레이스는 공급 측 기능(입점/정산)이 전체 개발량의 40% 이상을 차지하는 것이 일반적입니다.",
		},
	},
	{
		keywords: []string{"플랫폼", "중개", "매칭", "거래"},
		archetype: Archetype{
			Name:         "플랫폼",
			BudgetRange:  "4,000만원 ~ 1억원",
			TypicalWeeks: "12~18주",
			TechStacks: []string{
				"Next.js + NestJS + PostgreSQL + Redis",
				"Flutter + Spring Boot + MySQL",
			},
			Risks: []string{
				"양방향 사용자 그룹의 요구사항이 충돌해 범위가 커지기 쉽습니다",
				"신뢰/안전 장치(신고, 제재, 에스크로)가 뒤늦게 추가되는 경우가 많습니다",
			},
			MissedFeatures: []string{
				"신고 및 차단",
				"거래 후기/평점",
				"운영자 중재 도구",
			},
			MarketInsight: "중개 플랫폼은 MVP 단계에서 거래 안전장치를 갖춰야 초기 신뢰를 확보할 수 있습니다.",
		},
	},
	{
		keywords: []string{"앱", "어플", "모바일", "ios", "안드로이드"},
		archetype: Archetype{
			Name:         "모바일 앱",
			BudgetRange:  "2,500만원 ~ 7,000만원",
			TypicalWeeks: "10~16주",
			TechStacks: []string{
				"React Native + Node.js + PostgreSQL",
				"Flutter + Firebase",
			},
			Risks: []string{
				"앱스토어 심사 리젝으로 출시가 1~3주 지연될 수 있습니다",
				"iOS/Android 동시 대응 시 QA 비용이 1.5배로 늘어납니다",
			},
			MissedFeatures: []string{
				"푸시 알림 수신 설정",
				"강제 업데이트 처리",
				"오프라인 상태 안내",
			},
			MarketInsight: "모바일 앱은 출시 후 30일 리텐션이 20%를 넘는지가 초기 성패를 가릅니다.",
		},
	},
	{
		keywords: []string{"웹", "홈페이지", "사이트", "saas"},
		archetype: Archetype{
			Name:         "웹 서비스",
			BudgetRange:  "2,000만원 ~ 6,000만원",
			TypicalWeeks: "8~14주",
			TechStacks: []string{
				"Next.js + NestJS + PostgreSQL",
				"Next.js + Supabase",
			},
			Risks: []string{
				"반응형 대응 범위(모바일 웹)가 견적에서 누락되기 쉽습니다",
				"SEO 요구사항이 후반에 추가되면 구조 변경 비용이 큽니다",
			},
			MissedFeatures: []string{
				"검색엔진 최적화(SEO) 기본 설정",
				"관리자 통계 화면",
				"이용약관/개인정보 처리방침 페이지",
			},
			MarketInsight: "웹 서비스는 초기 로딩 3초를 넘기면 이탈률이 절반 이상 증가한다는 통계가 일반적입니다.",
		},
	},
}

// defaultArchetype is returned when no keyword matches.
var defaultArchetype = archetypeRules[len(archetypeRules)-1].archetype

// ClassifyProject keyword-matches the overview text against the fixed
// archetype table. First matching keyword wins; an unrecognised overview
// falls back to the generic web-service archetype.
func ClassifyProject(overview string) Archetype {
	haystack := strings.ToLower(overview)
	for _, rule := range archetypeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				return rule.archetype
			}
		}
	}
	return defaultArchetype
}
