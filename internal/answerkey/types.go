package answerkey

// RawQuestion is one parsed question record as produced by a single
// extraction strategy, before normalization and scoring.
type RawQuestion struct {
	Chosen  string
	Correct string
	Status  string
	Section string
}

// SectionInfo describes one detected section in document order.
type SectionInfo struct {
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

// Meta holds candidate and exam fields found in the document header.
type Meta struct {
	Name         string   `json:"name,omitempty"`
	RollNumber   string   `json:"rollNumber,omitempty"`
	Registration string   `json:"registration,omitempty"`
	TestCentre   string   `json:"testCentre,omitempty"`
	TestDate     string   `json:"testDate,omitempty"`
	TestTime     string   `json:"testTime,omitempty"`
	Subject      string   `json:"subject,omitempty"`
	Community    string   `json:"community,omitempty"`
	ExamImages   []string `json:"examImages"`
}

// SectionScore is the tally for one named section.
type SectionScore struct {
	Name      string  `json:"name"`
	Total     float64 `json:"total"`
	Correct   int     `json:"correct"`
	Wrong     int     `json:"wrong"`
	Blank     int     `json:"blank"`
	Attempted int     `json:"attempted"`
	Questions int     `json:"questions"`
}

// Score is the outcome of applying the marking rule to a question list.
type Score struct {
	Total     float64        `json:"total"`
	Correct   int            `json:"correct"`
	Wrong     int            `json:"wrong"`
	Blank     int            `json:"blank"`
	Attempted int            `json:"attempted"`
	Questions int            `json:"questions"`
	Sections  []SectionScore `json:"sections"`
}

// Rule describes the fixed marking rule, echoed in responses.
type Rule struct {
	Correct float64 `json:"correct"`
	Wrong   float64 `json:"wrong"`
	Blank   float64 `json:"blank"`
}

// MarkingRule is the rule applied by this service.
var MarkingRule = Rule{Correct: 1, Wrong: -1.0 / 3, Blank: 0}

// Result is the full scoring response for one answer-key URL.
type Result struct {
	URL string `json:"url"`
	Score
	SectionsDetected []SectionInfo `json:"sectionsDetected"`
	Meta             Meta          `json:"meta"`
	Rule             Rule          `json:"rule"`
}
