// File path: internal/rfp/topics.go
package rfp

// TopicID identifies one of the seven fixed interview topics. Answer writes
// dispatch over this enum with an explicit switch so that field routing stays
// type-checked.
type TopicID string

const (
	TopicOverview          TopicID = "overview"
	TopicTargetUsers       TopicID = "target_users"
	TopicCoreFeatures      TopicID = "core_features"
	TopicReferenceServices TopicID = "reference_services"
	TopicTechRequirements  TopicID = "tech_requirements"
	TopicBudgetTimeline    TopicID = "budget_timeline"
	TopicAdditional        TopicID = "additional_requirements"
)

// Topic describes one interview step. Order is fixed at compile time.
type Topic struct {
	ID       TopicID `json:"id"`
	Label    string  `json:"label"`
	Question string  `json:"question"`
	Required bool    `json:"required"`
	Order    int     `json:"order"`
}

// FirstTopicIndex and LastTopicIndex bound the 1-based topic cursor. An index
// greater than LastTopicIndex means the interview is complete.
const (
	FirstTopicIndex = 1
	LastTopicIndex  = 7
)

var topicRegistry = []Topic{
	{
		ID:       TopicOverview,
		Label:    "프로젝트 개요",
		Question: "어떤 프로젝트를 계획하고 계신가요? 만들고 싶은 서비스나 해결하고 싶은 문제를 자유롭게 설명해 주세요.",
		Required: true,
		Order:    1,
	},
	{
		ID:       TopicTargetUsers,
		Label:    "타겟 사용자",
		Question: "주요 타겟 사용자는 누구인가요? 연령대, 직업, 이용 상황 등을 알려주시면 좋습니다.",
		Required: false,
		Order:    2,
	},
	{
		ID:       TopicCoreFeatures,
		Label:    "핵심 기능",
		Question: "꼭 필요한 핵심 기능을 알려주세요. 쉼표나 줄바꿈으로 구분해 중요한 순서대로 적어주시면 됩니다.",
		Required: true,
		Order:    3,
	},
	{
		ID:       TopicReferenceServices,
		Label:    "참고 서비스",
		Question: "참고하고 싶은 서비스나 벤치마킹 대상이 있나요? 좋았던 점도 함께 알려주세요.",
		Required: false,
		Order:    4,
	},
	{
		ID:       TopicTechRequirements,
		Label:    "기술 요구사항",
		Question: "선호하는 기술 스택이나 연동이 필요한 시스템이 있나요? 없다면 건너뛰셔도 됩니다.",
		Required: false,
		Order:    5,
	},
	{
		ID:       TopicBudgetTimeline,
		Label:    "예산 및 일정",
		Question: "예상하시는 예산 범위와 희망 오픈 시기를 알려주세요.",
		Required: false,
		Order:    6,
	},
	{
		ID:       TopicAdditional,
		Label:    "추가 요구사항",
		Question: "그 외에 전달하고 싶은 요구사항이 있다면 알려주세요.",
		Required: false,
		Order:    7,
	},
}

// Topics returns the fixed ordered topic registry.
func Topics() []Topic {
	out := make([]Topic, len(topicRegistry))
	copy(out, topicRegistry)
	return out
}

// TopicAt returns the topic for a 1-based cursor position. The second return
// is false once the cursor has moved past the last topic.
func TopicAt(index int) (Topic, bool) {
	if index < FirstTopicIndex || index > LastTopicIndex {
		return Topic{}, false
	}
	return topicRegistry[index-1], true
}
