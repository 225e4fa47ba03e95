// File path: internal/rfp/intake.go
package rfp

import "strings"

// Sentinel messages recognised by the interview. SkipSentinel only works on
// optional topics; FinalizeSentinel shortcuts the remaining topics at any
// point and completes the interview with whatever has been collected.
const (
	SkipSentinel     = "건너뛰기"
	FinalizeSentinel = "바로 RFP 생성하기"
)

const (
	requiredSkipNotice = "이 항목은 꼭 필요한 정보라 건너뛸 수 없어요. 간단하게라도 답변해 주세요."
	finalizeAck        = "네, 지금까지 수집된 내용으로 RFP 문서를 생성할게요."
	interviewDoneAck   = "모든 질문이 끝났습니다. 답변해 주신 내용으로 RFP 문서를 생성할게요."
)

// Update describes the single field written by a turn.
type Update struct {
	Topic    TopicID       `json:"topic"`
	Text     string        `json:"text,omitempty"`
	Features []FeatureItem `json:"features,omitempty"`
}

// Turn is the deterministic outcome of one interview step. Ack comments on
// the user's answer, Question is the next prompt (empty once completed).
// FeatureSeed is set when the core-features topic was just answered, so the
// caller can attempt model enrichment of the feature list.
type Turn struct {
	Ack         string
	Question    string
	Update      *Update
	NextIndex   int
	Completed   bool
	FeatureSeed bool
}

// Advance maps the current cursor and the user's latest message onto the next
// interview state. It is total over its inputs and performs no I/O; the
// caller owns the session and applies the returned update itself via Apply.
func Advance(index int, userText string, answers AnswerRecord) Turn {
	text := strings.TrimSpace(userText)

	if text == FinalizeSentinel {
		return Turn{Ack: finalizeAck, NextIndex: index, Completed: true}
	}

	topic, ok := TopicAt(index)
	if !ok {
		// Cursor already past the last topic: the interview is over.
		return Turn{Ack: interviewDoneAck, NextIndex: index, Completed: true}
	}

	if text == SkipSentinel {
		if topic.Required {
			return Turn{
				Ack:       requiredSkipNotice,
				Question:  topic.Question,
				NextIndex: index,
			}
		}
		return advanceTurn(index, nil, skipAck(topic))
	}

	update := &Update{Topic: topic.ID}
	if topic.ID == TopicCoreFeatures {
		update.Features = ParseFeatures(text)
	} else {
		update.Text = text
	}
	turn := advanceTurn(index, update, answerAck(topic))
	turn.FeatureSeed = topic.ID == TopicCoreFeatures
	return turn
}

// Apply writes a turn's update into the record. Fields are replaced whole;
// the feature list is never merged element-by-element.
func Apply(rec AnswerRecord, update *Update) AnswerRecord {
	if update == nil {
		return rec
	}
	switch update.Topic {
	case TopicOverview:
		rec.Overview = update.Text
	case TopicTargetUsers:
		rec.TargetUsers = update.Text
	case TopicCoreFeatures:
		rec.CoreFeatures = append([]FeatureItem(nil), update.Features...)
	case TopicReferenceServices:
		rec.ReferenceServices = update.Text
	case TopicTechRequirements:
		rec.TechRequirements = update.Text
	case TopicBudgetTimeline:
		rec.BudgetTimeline = update.Text
	case TopicAdditional:
		rec.AdditionalRequirements = update.Text
	}
	return rec
}

func advanceTurn(index int, update *Update, ack string) Turn {
	next := index + 1
	if next > LastTopicIndex+1 {
		next = LastTopicIndex + 1
	}
	turn := Turn{Ack: ack, Update: update, NextIndex: next}
	if nextTopic, ok := TopicAt(next); ok {
		turn.Question = nextTopic.Question
	} else {
		turn.Completed = true
		turn.Ack = strings.TrimSpace(ack + " " + interviewDoneAck)
	}
	return turn
}

func skipAck(topic Topic) string {
	return "네, " + topic.Label + " 항목은 건너뛸게요."
}

func answerAck(topic Topic) string {
	return topic.Label + " 내용 확인했습니다."
}
