// README: Follow-up detection and context recovery from the history window.
package interpret

import (
	"strings"

	"safar/internal/lexicon"
)

// historyWindow bounds how many trailing turns are inspected.
const historyWindow = 6

// IsFollowUp decides whether the utterance continues the previous topic.
// The rules form an ordered waterfall; the new-destination override (a place
// mention that differs from the previous one) beats every later rule,
// including the short-utterance rule.
func IsFollowUp(utterance string, history []Turn) bool {
	if len(history) == 0 {
		return false
	}

	lower := strings.ToLower(utterance)
	currentDests := lexicon.PlacesIn(lower)
	prevDest := previousDestination(history)

	// Rule 1: a different destination than before means a topic change.
	if len(currentDests) > 0 && prevDest != "" && currentDests[0] != prevDest {
		return false
	}

	// Rule 2: a long utterance naming a place is a self-contained question.
	if len(currentDests) > 0 && len(strings.Fields(utterance)) > 8 {
		return false
	}

	// Rule 3: explicit back-references to the previous exchange.
	if lexicon.ContainsAny(lower, lexicon.BackReferencePhrases) {
		return true
	}

	// Rule 4: short acknowledgement-style messages with no place mention.
	if len(strings.Fields(utterance)) <= 4 && len(currentDests) == 0 {
		return true
	}

	// Rule 5: pronoun references without a place of their own.
	if len(currentDests) == 0 && lexicon.ContainsAny(lower, lexicon.PronounReferencePhrases) {
		return true
	}

	// 5-8 token utterances with no place and no reference phrase land here.
	return false
}

// previousDestination finds the most recently mentioned place in the history
// window: turns are walked newest-first, and within a turn the first place in
// lexicon order wins.
func previousDestination(history []Turn) string {
	window := lastTurns(history, historyWindow)
	for i := len(window) - 1; i >= 0; i-- {
		if places := lexicon.PlacesIn(window[i].Content); len(places) > 0 {
			return places[0]
		}
	}
	return ""
}

// ExtractContext scans the history window for inheritable state: the primary
// and last-seen destinations, and the topics the assistant already covered.
// History scans recover destinations only; origins are never inherited from
// prose, so Context.Origin stays empty here.
func ExtractContext(history []Turn) Context {
	var ctx Context
	for _, turn := range lastTurns(history, historyWindow) {
		content := strings.ToLower(turn.Content)

		for _, place := range lexicon.PlacesIn(content) {
			ctx.LastDestination = place
			if ctx.Destination == "" {
				ctx.Destination = place
			}
		}

		if turn.Role != RoleAssistant {
			continue
		}
		for _, topic := range lexicon.Topics {
			if lexicon.ContainsAny(content, topic.Keywords) && !containsString(ctx.TopicsDiscussed, topic.Name) {
				ctx.TopicsDiscussed = append(ctx.TopicsDiscussed, topic.Name)
			}
		}
	}
	return ctx
}

func lastTurns(history []Turn, n int) []Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
