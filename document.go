package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	docx "github.com/fumiama/go-docx"
)

const (
	documentTitle       = "Request for Proposal Response"
	documentAttribution = "This document was generated using AI-powered RFP Response System"
	separatorRule       = 60
)

// headingKeywords flag short lines as section headings even when they are
// not fully upper-cased.
var headingKeywords = []string{
	"overview", "executive summary", "introduction", "conclusion",
	"requirements", "approach", "methodology", "timeline", "budget", "team",
}

// bulletMarkers are matched against the start of a trimmed line. The marker
// text stays in the rendered bullet verbatim.
var bulletMarkers = []string{"•", "-", "*", "1.", "2.", "3.", "4.", "5."}

// parseContentSections classifies generated prose line by line. Blank lines
// are dropped; every other line becomes exactly one section. Lines carry no
// state across each other.
func parseContentSections(content string) []ContentSection {
	var sections []ContentSection
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sections = append(sections, ContentSection{Kind: classifyLine(line), Text: line})
	}
	return sections
}

// classifyLine expects a trimmed, non-empty line. Heading wins over bullet.
func classifyLine(line string) SectionKind {
	if isHeadingLine(line) {
		return SectionHeading
	}
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return SectionBullet
		}
	}
	return SectionParagraph
}

func isHeadingLine(line string) bool {
	if utf8.RuneCountInString(line) >= 100 {
		return false
	}
	if isAllUpper(line) {
		return true
	}
	lowered := strings.ToLower(line)
	for _, keyword := range headingKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether the line has at least one letter and no
// lower-case letters.
func isAllUpper(line string) bool {
	hasUpper := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// createProposalDocument renders the final response content into a DOCX at
// outputPath: fixed header, classified body, fixed footer. Any failure is
// wrapped; a partially written file must not be served.
func createProposalDocument(content, outputPath string) error {
	doc := docx.New().WithDefaultTheme()

	addDocumentHeader(doc)
	for _, section := range parseContentSections(content) {
		switch section.Kind {
		case SectionHeading:
			doc.AddParagraph().AddText(section.Text).Size("28").Bold()
		case SectionBullet:
			doc.AddParagraph().AddText(section.Text)
		default:
			doc.AddParagraph().AddText(section.Text)
		}
	}
	addDocumentFooter(doc)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating proposal document: %w", err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("writing proposal document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing proposal document: %w", err)
	}
	return nil
}

func addDocumentHeader(doc *docx.Docx) {
	title := doc.AddParagraph().Justification("center")
	title.AddText(documentTitle).Size("44").Bold()

	date := doc.AddParagraph().Justification("right")
	date.AddText("Generated on: " + time.Now().Format("January 2, 2006"))

	rule := doc.AddParagraph().Justification("center")
	rule.AddText(strings.Repeat("=", separatorRule))

	doc.AddParagraph()
}

func addDocumentFooter(doc *docx.Docx) {
	doc.AddParagraph()

	rule := doc.AddParagraph().Justification("center")
	rule.AddText(strings.Repeat("=", separatorRule))

	attribution := doc.AddParagraph().Justification("center")
	attribution.AddText(documentAttribution).Size("16").Italic()
}
