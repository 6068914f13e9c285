package answerkey

import (
	"math"
	"strings"
)

// blankStatuses are attempt-status phrases that mark a question unanswered
// regardless of what the chosen cell contains.
var blankStatuses = []string{"not answered", "not attempted", "unanswered"}

// isBlank reports whether a question counts as unattempted. A question is
// blank when the chosen option is empty or the "--" placeholder, when the
// status says so, or when no correct option could be determined at all
// (an unscoreable question defaults to blank, never to wrong).
func isBlank(q RawQuestion, chosen, correct string) bool {
	if chosen == "" || strings.TrimSpace(q.Chosen) == "--" {
		return true
	}
	status := strings.ToLower(q.Status)
	for _, phrase := range blankStatuses {
		if strings.Contains(status, phrase) {
			return true
		}
	}
	return correct == ""
}

// ComputeScore marks every question under the +1 / -1/3 / 0 rule. Options are
// canonicalized with NormalizeOption only; prefix resolution for answer text
// like "2. East" happens in the structured extractor, never here. Marks are
// accumulated as integer thirds (+3 per correct, -1 per wrong) so that no
// floating-point error creeps in before the final division; rounding to two
// decimals happens exactly once, at presentation.
//
// Section tallies are grouped by the questions' assigned section labels in
// first-seen order, with unlabeled questions grouped under "Overall". Scoring
// is a pure function of its input and never fails; an empty list yields
// all-zero tallies.
func ComputeScore(questions []RawQuestion) Score {
	score := Score{Questions: len(questions)}

	type tally struct {
		name    string
		thirds  int
		correct int
		wrong   int
		blank   int
		count   int
	}
	var order []string
	tallies := make(map[string]*tally)

	thirds := 0
	for _, q := range questions {
		chosen := NormalizeOption(q.Chosen)
		correct := NormalizeOption(q.Correct)

		sec, ok := tallies[q.Section]
		if !ok {
			sec = &tally{name: q.Section}
			tallies[q.Section] = sec
			order = append(order, q.Section)
		}
		sec.count++

		switch {
		case isBlank(q, chosen, correct):
			score.Blank++
			sec.blank++
		case chosen == correct:
			score.Correct++
			sec.correct++
			sec.thirds += 3
			thirds += 3
		default:
			score.Wrong++
			sec.wrong++
			sec.thirds--
			thirds--
		}
	}

	score.Attempted = score.Correct + score.Wrong
	score.Total = roundTwo(float64(thirds) / 3)

	for _, name := range order {
		sec := tallies[name]
		label := sec.name
		if label == "" {
			label = "Overall"
		}
		score.Sections = append(score.Sections, SectionScore{
			Name:      label,
			Total:     roundTwo(float64(sec.thirds) / 3),
			Correct:   sec.correct,
			Wrong:     sec.wrong,
			Blank:     sec.blank,
			Attempted: sec.correct + sec.wrong,
			Questions: sec.count,
		})
	}

	return score
}

// roundTwo rounds half away from zero at two decimal places.
func roundTwo(x float64) float64 {
	return math.Round(x*100) / 100
}
