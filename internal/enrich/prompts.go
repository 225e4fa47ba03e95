// File path: internal/enrich/prompts.go
package enrich

import "github.com/tmc/langchaingo/prompts"

var featurePrompt = prompts.NewPromptTemplate(
	`당신은 외주 개발 프로젝트의 요구사항 분석 전문가입니다.
아래 프로젝트 개요를 읽고 필요한 기능을 8~15개 도출해 주세요.

프로젝트 개요:
{overview}

반드시 JSON 배열만 출력하세요. 마크다운 코드 펜스나 설명 문장을 붙이지 마세요.
각 항목 형식: {{"name": "기능명", "description": "한 문장 설명", "priority": "P1|P2|P3"}}
P1은 MVP 필수 기능, P2는 중요 기능, P3는 있으면 좋은 기능입니다.`,
	[]string{"overview"},
)

var replyPrompt = prompts.NewPromptTemplate(
	`당신은 외주 개발 상담을 진행하는 친절한 컨설턴트입니다.
사용자가 방금 "{current_topic}" 주제에 답변했고, 다음 주제는 "{next_topic}"입니다.
{feature_note}

최근 대화:
{history}

JSON 객체 하나만 출력하세요. 형식:
{{"analysis": "사용자의 마지막 답변에 대한 1~2문장 피드백", "question": "{next_topic}에 대한 자연스러운 다음 질문"}}
두 필드 모두 한국어로, 비어 있지 않게 작성하세요.`,
	[]string{"current_topic", "next_topic", "feature_note", "history"},
)
