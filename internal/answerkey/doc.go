// Package answerkey extracts a candidate's responses from a published
// answer-key HTML page and scores them under the fixed marking rule
// (+1 correct, -1/3 wrong, 0 blank).
//
// Answer-key pages are published by several agencies with no common format,
// so extraction runs through three independent strategies in strict priority
// order: structured DOM markup, raw-text regex matching, then HTML table
// rows. The first strategy producing at least one question wins; results are
// never merged across strategies.
//
// Scores accumulate as integer "thirds" (+3 per correct, -1 per wrong) and
// are divided by three only for display, so fractional marks never pick up
// floating-point error.
package answerkey
