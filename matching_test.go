package main

import (
	"testing"
)

func TestParseMatchingTable_SynonymNormalization(t *testing.T) {
	cases := []struct {
		raw  string
		want MatchStrength
	}{
		{"strong", MatchStrong},
		{"Excellent", MatchStrong},
		{"HIGH", MatchStrong},
		{"medium", MatchMedium},
		{"Moderate", MatchMedium},
		{"average", MatchMedium},
		{"ADEQUATE", MatchMedium},
		{"weak", MatchWeak},
		{"Low", MatchWeak},
		{"poor", MatchWeak},
		{"limited", MatchWeak},
		{"none", MatchNone},
		{"Missing", MatchNone},
		{"no", MatchNone},
		{"absent", MatchNone},
		{"Not Available", MatchNone},
	}
	for _, tc := range cases {
		reply := "REQUIREMENT: req\nMATCH: " + tc.raw + "\n---"
		matches := parseMatchingTable(reply)
		if len(matches) != 1 {
			t.Fatalf("parseMatchingTable(%q) yielded %d records, want 1", tc.raw, len(matches))
		}
		if matches[0].Match != tc.want {
			t.Errorf("strength %q normalized to %q, want %q", tc.raw, matches[0].Match, tc.want)
		}
	}
}

func TestParseMatchingTable_UnknownStrengthTitleCased(t *testing.T) {
	matches := parseMatchingTable("REQUIREMENT: req\nMATCH: partial coverage\n---")
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if got := matches[0].Match; got != MatchStrength("Partial Coverage") {
		t.Errorf("unknown strength = %q, want %q", got, "Partial Coverage")
	}
}

func TestParseMatchingTable_NoDelimiterSingleBlock(t *testing.T) {
	matches := parseMatchingTable("REQUIREMENT: Cloud hosting\nCAPABILITY: AWS partner\nMATCH: strong\nNOTES: ok")
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if matches[0].Requirement != "Cloud hosting" {
		t.Errorf("requirement = %q", matches[0].Requirement)
	}
}

func TestParseMatchingTable_MissingCapabilityAndNotesDefaulted(t *testing.T) {
	matches := parseMatchingTable("REQUIREMENT: 24/7 support\nMATCH: no\n---")
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if matches[0].Capability != "Capability assessment pending" {
		t.Errorf("capability = %q, want placeholder", matches[0].Capability)
	}
	if matches[0].Notes != "No additional notes" {
		t.Errorf("notes = %q, want placeholder", matches[0].Notes)
	}
}

func TestParseMatchingTable_MissingRequirementDropsBlock(t *testing.T) {
	reply := "CAPABILITY: something\nMATCH: strong\nNOTES: no requirement here\n---\nREQUIREMENT: kept\nMATCH: weak\n---"
	matches := parseMatchingTable(reply)
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if matches[0].Requirement != "kept" {
		t.Errorf("requirement = %q, want %q", matches[0].Requirement, "kept")
	}
}

func TestParseMatchingTable_MissingMatchDropsBlock(t *testing.T) {
	matches := parseMatchingTable("REQUIREMENT: no strength given\nCAPABILITY: x\n---")
	if len(matches) != 0 {
		t.Fatalf("got %d records, want 0", len(matches))
	}
}

func TestParseMatchingTable_TwoRecordScenario(t *testing.T) {
	reply := "REQUIREMENT: Must support SSO\nCAPABILITY: Has SAML integration\nMATCH: excellent\nNOTES: none\n---\nREQUIREMENT: 24/7 support\nMATCH: no\n---"
	matches := parseMatchingTable(reply)
	if len(matches) != 2 {
		t.Fatalf("got %d records, want 2", len(matches))
	}

	first := RequirementMatch{
		Requirement: "Must support SSO",
		Capability:  "Has SAML integration",
		Match:       MatchStrong,
		Notes:       "none",
	}
	if matches[0] != first {
		t.Errorf("first record = %+v, want %+v", matches[0], first)
	}

	second := RequirementMatch{
		Requirement: "24/7 support",
		Capability:  "Capability assessment pending",
		Match:       MatchNone,
		Notes:       "No additional notes",
	}
	if matches[1] != second {
		t.Errorf("second record = %+v, want %+v", matches[1], second)
	}
}

func TestParseMatchingTable_PreservesOrderAndDuplicates(t *testing.T) {
	reply := "REQUIREMENT: A\nMATCH: strong\n---\nREQUIREMENT: B\nMATCH: weak\n---\nREQUIREMENT: A\nMATCH: medium\n---"
	matches := parseMatchingTable(reply)
	if len(matches) != 3 {
		t.Fatalf("got %d records, want 3", len(matches))
	}
	wantReqs := []string{"A", "B", "A"}
	for i, want := range wantReqs {
		if matches[i].Requirement != want {
			t.Errorf("record %d requirement = %q, want %q", i, matches[i].Requirement, want)
		}
	}
	if matches[2].Match != MatchMedium {
		t.Errorf("duplicate requirement kept its own strength: got %q", matches[2].Match)
	}
}

func TestParseMatchingTable_InternalWhitespacePreserved(t *testing.T) {
	matches := parseMatchingTable("  REQUIREMENT:   Must   support  SSO  \n  MATCH:  strong  \n---")
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if matches[0].Requirement != "Must   support  SSO" {
		t.Errorf("requirement = %q, internal whitespace must survive", matches[0].Requirement)
	}
}

func TestParseMatchingTable_UntaggedLinesIgnored(t *testing.T) {
	reply := "Here is the analysis you asked for:\nREQUIREMENT: req\nsome stray commentary\nMATCH: strong\ntrailing prose\n---"
	matches := parseMatchingTable(reply)
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if matches[0].Requirement != "req" || matches[0].Match != MatchStrong {
		t.Errorf("record = %+v", matches[0])
	}
}

func TestParseMatchingTable_DelimiterMidLineDoesNotSplit(t *testing.T) {
	reply := "REQUIREMENT: req\nMATCH: strong\nNOTES: weaker than the --- baseline\n---"
	matches := parseMatchingTable(reply)
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
	if matches[0].Notes != "weaker than the --- baseline" {
		t.Errorf("notes = %q", matches[0].Notes)
	}
}

func TestParseMatchingTable_FencedReply(t *testing.T) {
	reply := "```text\nREQUIREMENT: req\nMATCH: strong\n---\n```"
	matches := parseMatchingTable(reply)
	if len(matches) != 1 {
		t.Fatalf("got %d records, want 1", len(matches))
	}
}

func TestParseMatchingTable_EmptyAndBlankReplies(t *testing.T) {
	if got := parseMatchingTable(""); len(got) != 0 {
		t.Errorf("empty reply yielded %d records", len(got))
	}
	if got := parseMatchingTable("---\n---\n   \n---"); len(got) != 0 {
		t.Errorf("delimiter-only reply yielded %d records", len(got))
	}
}
