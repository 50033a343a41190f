package main

import "fmt"

// Prompt builders are pure: identical input text yields byte-identical
// prompts. Input documents are embedded whole, never truncated.

func buildRFPAnalysisPrompt(rfpContent string) string {
	return fmt.Sprintf(`You are an expert RFP analyst with deep experience in understanding and breaking down Request for Proposal documents.

Please analyze the following RFP content and extract the key requirements, deliverables, and evaluation criteria.

Structure your response with clear sections:
1. Project Overview
2. Key Requirements
3. Technical Specifications
4. Deliverables Expected
5. Timeline and Milestones
6. Evaluation Criteria
7. Budget/Cost Considerations (if mentioned)

Be thorough but concise. Focus on actionable requirements that a responding organization needs to address.

RFP Content:
%s`, rfpContent)
}

func buildOrgAnalysisPrompt(orgContent string) string {
	return fmt.Sprintf(`Analyze the following organization document and extract key information about:

1. Company Overview and Mission
2. Core Competencies and Services
3. Technical Capabilities
4. Past Experience and Projects
5. Team Expertise
6. Certifications and Qualifications
7. Unique Value Propositions

Focus on extracting information that would be relevant for responding to RFPs.

Organization Content:
%s`, orgContent)
}

// buildMatchingPrompt requests the tagged block format consumed by
// parseMatchingTable. The tag names, the bare --- delimiter line, and the
// strength vocabulary here are a wire format shared with the parser; change
// them together or not at all.
func buildMatchingPrompt(rfpRequirements, orgAnalysis string) string {
	return fmt.Sprintf(`Based on the RFP requirements and organization analysis provided, create a comprehensive matching analysis that shows:
- Each key RFP requirement (be thorough and extract all important requirements)
- How the organization can address it (or if it cannot)
- Match strength (Strong/Medium/Weak/None)
- Any gaps or concerns

Instructions:
1. Extract ALL significant requirements from the RFP, not just a few
2. For each requirement, assess the organization's capability to address it
3. Use "Strong" for excellent matches, "Medium" for adequate matches, "Weak" for poor matches, "None" for missing capabilities
4. Be thorough - include technical, operational, experience, and compliance requirements
5. If a requirement has no corresponding organizational capability, mark it as "None"

RFP Requirements:
%s

Organization Analysis:
%s

Provide the response in this exact format for each requirement, with the --- delimiter alone on its own line:
REQUIREMENT: [specific requirement from RFP]
CAPABILITY: [how org can address this, or "No corresponding capability identified"]
MATCH: [Strong/Medium/Weak/None]
NOTES: [additional notes, gaps, or concerns]
---

Make sure to cover at least 10-15 different requirements to provide a comprehensive analysis.`, rfpRequirements, orgAnalysis)
}

func buildResponsePrompt(rfpRequirements, orgAnalysis string) string {
	return fmt.Sprintf(`Based on the RFP requirements and organization analysis, generate a comprehensive prompt that can be used to create a winning RFP response.

The prompt should guide the creation of a response that:
1. Addresses all key RFP requirements
2. Highlights the organization's strengths
3. Provides specific examples and evidence
4. Follows professional RFP response structure (executive summary, technical approach, implementation plan, risk mitigation)
5. Demonstrates clear understanding of client needs

RFP Requirements:
%s

Organization Analysis:
%s

Create a detailed prompt that will generate a complete, professional RFP response.`, rfpRequirements, orgAnalysis)
}
