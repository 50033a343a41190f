package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Recognized line tags of the matching wire format. Must stay in sync with
// the format buildMatchingPrompt requests.
const (
	tagRequirement = "REQUIREMENT:"
	tagCapability  = "CAPABILITY:"
	tagMatch       = "MATCH:"
	tagNotes       = "NOTES:"
)

// Placeholders for fields the model left out. A missing capability or note
// never rejects the block.
const (
	defaultCapability = "Capability assessment pending"
	defaultNotes      = "No additional notes"
)

// matchSynonyms normalizes the strength vocabulary the model actually uses
// to the closed MatchStrength set. Lookup is on the lower-cased value.
var matchSynonyms = map[string]MatchStrength{
	"strong":        MatchStrong,
	"excellent":     MatchStrong,
	"high":          MatchStrong,
	"medium":        MatchMedium,
	"moderate":      MatchMedium,
	"average":       MatchMedium,
	"adequate":      MatchMedium,
	"weak":          MatchWeak,
	"low":           MatchWeak,
	"poor":          MatchWeak,
	"limited":       MatchWeak,
	"none":          MatchNone,
	"missing":       MatchNone,
	"no":            MatchNone,
	"absent":        MatchNone,
	"not available": MatchNone,
}

var titleCaser = cases.Title(language.English)

func normalizeMatchStrength(raw string) MatchStrength {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if strength, ok := matchSynonyms[lowered]; ok {
		return strength
	}
	// Unknown vocabulary is carried through title-cased instead of being
	// treated as a parse failure.
	return MatchStrength(titleCaser.String(lowered))
}

// parseMatchingTable converts a raw matching reply into ordered records.
// Malformed input degrades to fewer records, never to an error: model
// output is untrusted and partial results beat hard failure.
func parseMatchingTable(reply string) []RequirementMatch {
	var matches []RequirementMatch
	for _, block := range splitMatchBlocks(cleanModelOutput(reply)) {
		if match, ok := parseMatchBlock(block); ok {
			matches = append(matches, match)
		}
	}
	return matches
}

// splitMatchBlocks splits on a --- delimiter alone on its own line. A reply
// with no delimiter is a single block. Blocks empty after trimming are
// discarded.
func splitMatchBlocks(text string) []string {
	var blocks []string
	var current []string
	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// parseMatchBlock captures tagged lines in any order. Lines matching no tag
// are ignored; field values span a single line. A block yields a record only
// when both REQUIREMENT and MATCH were captured.
func parseMatchBlock(block string) (RequirementMatch, bool) {
	var match RequirementMatch
	var haveMatch bool
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, tagRequirement):
			match.Requirement = strings.TrimSpace(strings.TrimPrefix(line, tagRequirement))
		case strings.HasPrefix(line, tagCapability):
			match.Capability = strings.TrimSpace(strings.TrimPrefix(line, tagCapability))
		case strings.HasPrefix(line, tagMatch):
			match.Match = normalizeMatchStrength(strings.TrimPrefix(line, tagMatch))
			haveMatch = true
		case strings.HasPrefix(line, tagNotes):
			match.Notes = strings.TrimSpace(strings.TrimPrefix(line, tagNotes))
		}
	}
	if match.Requirement == "" || !haveMatch {
		return RequirementMatch{}, false
	}
	if match.Capability == "" {
		match.Capability = defaultCapability
	}
	if match.Notes == "" {
		match.Notes = defaultNotes
	}
	return match, true
}
