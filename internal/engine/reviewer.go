package engine

import "strings"

// ReviewerOutput is the parsed result of one review/revise reply.
type ReviewerOutput struct {
	Feedback       string
	RevisedContent string
}

// Marker and sentinel vocabulary the reviewer prompts instruct the model to
// use. Replies arrive with either colon width, so both are recognized.
var (
	feedbackMarkers = []string{"評估回饋：", "評估回饋:"}

	revisedMarkers = []string{
		"修訂後故事大綱：", "修訂後故事大綱:",
		"修訂後完整故事：", "修訂後完整故事:",
	}

	// Exact "content already meets the bar" openings. The second form
	// carries a character transposition that shipped in the reviewer
	// prompt itself, so it is matched as written.
	sentinelPrefixes = []string{"原故事大綱已達標", "原故完整事已達標"}

	// Looser phrases models fall back to when they ignore the output
	// format entirely.
	looseSentinels = []string{"已達標", "無需修訂"}
)

const (
	feedbackMetBar       = "審閱者認為內容已達標，無需修訂。"
	feedbackContentMet   = "原內容已達標，無需修訂。"
	feedbackDirectRevise = "直接修訂"
	feedbackEmptyOutput  = "審閱者輸出為空。"
)

// parseReviewerOutput extracts feedback and revised content from a raw
// reviewer reply. It never fails: whenever a revision cannot be confidently
// extracted, RevisedContent falls back to the pre-revision content.
func parseReviewerOutput(raw, fallback string) ReviewerOutput {
	out := ReviewerOutput{RevisedContent: fallback}

	fbIdx, fbLen := findFirstMarker(raw, feedbackMarkers)
	rvIdx, rvLen := findFirstMarker(raw, revisedMarkers)

	if fbIdx < 0 && rvIdx < 0 {
		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "":
			out.Feedback = feedbackEmptyOutput
		case containsAny(trimmed, looseSentinels):
			out.Feedback = feedbackContentMet
		default:
			out.Feedback = feedbackDirectRevise
			out.RevisedContent = trimmed
		}
		return out
	}

	if fbIdx >= 0 {
		start := fbIdx + fbLen
		end := len(raw)
		if rvIdx >= 0 {
			end = rvIdx
		}
		// A revised marker appearing before the feedback marker leaves
		// no feedback span.
		if end > start {
			out.Feedback = strings.TrimSpace(raw[start:end])
		}
	}

	if rvIdx >= 0 {
		candidate := strings.TrimSpace(raw[rvIdx+rvLen:])
		switch {
		case candidate == "":
			// Nothing after the marker; keep the fallback.
		case hasAnyPrefix(candidate, sentinelPrefixes):
			if out.Feedback == "" {
				out.Feedback = feedbackMetBar
			}
		default:
			out.RevisedContent = candidate
		}
	}

	return out
}

// findFirstMarker returns the position and length of the earliest marker
// occurrence, or (-1, 0) when none is present.
func findFirstMarker(s string, markers []string) (idx, length int) {
	idx = -1
	for _, m := range markers {
		i := strings.Index(s, m)
		if i < 0 {
			continue
		}
		if idx < 0 || i < idx {
			idx = i
			length = len(m)
		}
	}
	return idx, length
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
