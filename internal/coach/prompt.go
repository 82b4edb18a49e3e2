// Package coach assembles the coaching model's context and manages the
// streaming conversation with the provider.
package coach

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dukerupert/fallow/internal/habit"
	"github.com/dukerupert/fallow/internal/model"
	"github.com/dukerupert/fallow/internal/plan"
)

const dateLayout = "2006-01-02"

// detectHistoryGaps renders one annotation line for every pair of
// chronologically adjacent check-ins more than one day apart. These are
// historical gaps anywhere in the record, distinct from the "current gap
// from today" signal in the program package.
func detectHistoryGaps(history []model.CheckIn) string {
	if len(history) < 2 {
		return ""
	}

	dates := make([]string, len(history))
	for i, c := range history {
		dates[i] = c.Date
	}
	sort.Strings(dates)

	var gaps []string
	for i := 1; i < len(dates); i++ {
		prev, err1 := time.Parse(dateLayout, dates[i-1])
		curr, err2 := time.Parse(dateLayout, dates[i])
		if err1 != nil || err2 != nil {
			continue
		}
		// Noon anchors before differencing, same as the day arithmetic.
		prev = time.Date(prev.Year(), prev.Month(), prev.Day(), 12, 0, 0, 0, time.UTC)
		curr = time.Date(curr.Year(), curr.Month(), curr.Day(), 12, 0, 0, 0, time.UTC)

		diffDays := int(curr.Sub(prev).Hours() / 24)
		if diffDays > 1 {
			missed := diffDays - 1
			plural := ""
			if missed > 1 {
				plural = "s"
			}
			gaps = append(gaps, fmt.Sprintf("  [Gap: %d day%s missed between %s and %s]", missed, plural, dates[i-1], dates[i]))
		}
	}

	if len(gaps) == 0 {
		return ""
	}
	return "\n" + strings.Join(gaps, "\n")
}

// formatHistory renders the full check-in record, oldest first, with gap
// annotations appended.
func formatHistory(history []model.CheckIn) string {
	if len(history) == 0 {
		return ""
	}

	sorted := make([]model.CheckIn, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	var lines []string
	for i := range sorted {
		c := &sorted[i]

		var habits []string
		for _, h := range habit.All {
			if !h.Done(c) {
				continue
			}
			// A numeric habit logged as exactly 1 renders label-only,
			// indistinguishable from a plain "done". Known quirk, kept.
			if v := h.Value(c); h.Meta().Numeric && v > 1 {
				habits = append(habits, fmt.Sprintf("%s: %d", h.Label(), v))
			} else {
				habits = append(habits, h.Label())
			}
		}

		parts := []string{fmt.Sprintf("  %s:", c.Date)}
		if len(habits) > 0 {
			parts = append(parts, "    Habits: "+strings.Join(habits, ", "))
		}
		if c.Hardest != "" {
			parts = append(parts, "    Hardest: "+c.Hardest)
		}
		if c.Noticed != "" {
			parts = append(parts, "    Noticed: "+c.Noticed)
		}
		lines = append(lines, strings.Join(parts, "\n"))
	}

	return "\n\nCHECK-IN HISTORY (full journey so far):\n" + strings.Join(lines, "\n") + detectHistoryGaps(sorted)
}

// formatResponses renders the user's written action answers in caller
// order, with labels resolved from the plan catalog.
func formatResponses(responses []model.ActionResponse) string {
	if len(responses) == 0 {
		return ""
	}

	lines := make([]string, len(responses))
	for i, r := range responses {
		lines[i] = fmt.Sprintf("  %s: %s", plan.ResponseLabel(r.DayNumber, r.ActionIndex), r.ResponseText)
	}

	return "\n\nUSER'S WRITTEN RESPONSES (their own words — reference when contextually relevant):\n" +
		strings.Join(lines, "\n")
}

// SystemPrompt builds the coach's system prompt from the current program
// position and the user's recorded history. It performs no I/O and is
// deterministic for a given input.
func SystemPrompt(dayNumber int, weekTheme string, history []model.CheckIn, responses []model.ActionResponse) string {
	return fmt.Sprintf(`You are a calm, wise coach guiding someone through a 30-day dopamine reset. Your name is simply "Coach."

CONTEXT:
- They are on Day %d of 30
- Current week theme: %q
- This is a personal journey to reclaim attention, reduce phone/social media dependency, and reconnect with slower, deeper experiences
- You have access to their full check-in history below. Reference past entries when relevant — notice patterns, growth, recurring struggles, and celebrate progress over time.%s%s

YOUR STYLE:
- Sound like a thoughtful friend, not a therapist or self-help guru.
- Speak gently but directly. No toxic positivity.
- Be real and human. It's okay to be slightly playful or poetic.
- Use short paragraphs. Breathe between thoughts.
- Draw from stoic philosophy, mindfulness practice, and neuroscience when relevant.
- Validate struggle without enabling avoidance.
- Ask one thoughtful question when appropriate, rather than lecturing.
- Keep responses concise (2-4 short paragraphs typically).
- Prefer flowing prose over lists.
- You may use metaphors drawn from nature, craftsmanship, or contemplative traditions.
- Use **bold** to emphasize the single most important phrase or insight in each response. Typically 1-2 bold phrases per reply, no more — just the key takeaway.

IMPORTANT:
- If they express real distress or mention mental health crises, gently suggest professional support.
- Never shame them for slipping. Frame setbacks as data, not failure.
- Celebrate small wins genuinely.
- Remember: silence and boredom are the medicine, not the problem.
- If you notice gaps in their check-in history, acknowledge warmly but briefly.
- Never ask "what happened?" unless they bring it up.
- Frame coming back as the win: "You're here, and that's what counts."
- Focus on present momentum, not missed days.`,
		dayNumber, weekTheme, formatHistory(history), formatResponses(responses))
}
