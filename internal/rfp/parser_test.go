// File path: internal/rfp/parser_test.go
package rfp

import "testing"

func TestParseFeaturesSplitsAndPrioritizes(t *testing.T) {
	items := ParseFeatures("로그인, 결제\n채팅\n- 알림\n• 검색, 지도")
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d: %#v", len(items), items)
	}
	wantNames := []string{"로그인", "결제", "채팅", "알림", "검색"}
	wantPriorities := []Priority{PriorityP1, PriorityP1, PriorityP2, PriorityP2, PriorityP3}
	for i, item := range items {
		if item.Name != wantNames[i] {
			t.Errorf("item %d: name %q, want %q", i, item.Name, wantNames[i])
		}
		if item.Description != wantNames[i] {
			t.Errorf("item %d: description %q, want %q", i, item.Description, wantNames[i])
		}
		if item.Priority != wantPriorities[i] {
			t.Errorf("item %d: priority %q, want %q", i, item.Priority, wantPriorities[i])
		}
	}
}

func TestParseFeaturesBounds(t *testing.T) {
	cases := []struct {
		name  string
		input string
		count int
	}{
		{"empty", "", 0},
		{"whitespace", "  \n\t , ,• ", 0},
		{"single", "로그인", 1},
		{"overflow capped at five", "a,b,c,d,e,f,g,h", 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := ParseFeatures(tc.input)
			if len(items) != tc.count {
				t.Fatalf("expected %d items, got %d", tc.count, len(items))
			}
			for i, item := range items {
				switch item.Priority {
				case PriorityP1, PriorityP2, PriorityP3:
				default:
					t.Errorf("item %d: invalid priority %q", i, item.Priority)
				}
				if i < 2 && item.Priority != PriorityP1 {
					t.Errorf("item %d: expected P1, got %q", i, item.Priority)
				}
			}
		})
	}
}

func TestParseFeaturesKeepsInlineHyphens(t *testing.T) {
	items := ParseFeatures("- 실시간 푸시-알림, QR-코드 결제")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %#v", len(items), items)
	}
	if items[0].Name != "실시간 푸시-알림" {
		t.Errorf("leading bullet stripped but inline hyphen kept, got %q", items[0].Name)
	}
	if items[1].Name != "QR-코드 결제" {
		t.Errorf("hyphenated name must stay one token, got %q", items[1].Name)
	}
}

func TestParseFeaturesPreservesOrder(t *testing.T) {
	items := ParseFeatures("셋째가 아니라 첫째\n둘째")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "셋째가 아니라 첫째" || items[1].Name != "둘째" {
		t.Errorf("source order not preserved: %#v", items)
	}
}
