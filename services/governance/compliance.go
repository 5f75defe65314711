// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import "strings"

// Compliance dimension scores. The 50 branch fires when the profile
// carries some signal (a flag or an industry) but no rule matched, e.g. an
// industry outside the SOC 2 set with every flag cleared.
const (
	complianceScoreApplicable = 100.0
	complianceScoreSignalOnly = 50.0
	complianceScoreBlank      = 0.0
)

// soc2Industries are the industries that trigger a SOC 2 Type II
// recommendation. Matching is case-insensitive.
var soc2Industries = map[string]bool{
	"technology": true,
	"saas":       true,
	"software":   true,
}

// ApplicableFrameworks evaluates every applicability rule against the
// profile and returns the triggered frameworks. Rules are independent and
// may all fire at once, with one exception: a PII flag yields GDPR when an
// EU region is present and the NIST Privacy Framework otherwise, never
// both. A profile that triggers nothing returns an empty list, not an
// error.
func ApplicableFrameworks(profile OrganizationProfile) []FrameworkApplicability {
	frameworks := []FrameworkApplicability{}

	if profile.ProcessesPHI {
		frameworks = append(frameworks, FrameworkApplicability{
			Framework: "HIPAA",
			Reason:    "organization processes protected health information",
			Mandatory: true,
			Reference: "https://www.hhs.gov/hipaa/index.html",
		})
	}

	if profile.HandlesDoDData {
		frameworks = append(frameworks,
			FrameworkApplicability{
				Framework: "CMMC Level 2",
				Reason:    "organization handles DoD controlled unclassified information",
				Mandatory: true,
				Reference: "https://dodcio.defense.gov/cmmc/",
			},
			FrameworkApplicability{
				Framework: "NIST SP 800-171",
				Reason:    "CUI safeguarding requirements for DoD contractors",
				Mandatory: true,
				Reference: "https://csrc.nist.gov/pubs/sp/800/171/r3/final",
			},
		)
	}

	if profile.ProcessesCardholderData {
		frameworks = append(frameworks, FrameworkApplicability{
			Framework: "PCI-DSS v4.0",
			Reason:    "organization stores, processes, or transmits cardholder data",
			Mandatory: true,
			Reference: "https://www.pcisecuritystandards.org/",
		})
	}

	if profile.ProcessesPII {
		if profile.GeoRegions.Contains("EU") {
			frameworks = append(frameworks, FrameworkApplicability{
				Framework: "GDPR",
				Reason:    "organization processes PII of EU data subjects",
				Mandatory: true,
				Reference: "https://gdpr.eu/",
			})
		} else {
			frameworks = append(frameworks, FrameworkApplicability{
				Framework: "NIST Privacy Framework",
				Reason:    "organization processes PII outside EU jurisdictions",
				Mandatory: false,
				Reference: "https://www.nist.gov/privacy-framework",
			})
		}
	}

	if soc2Industries[strings.ToLower(strings.TrimSpace(profile.Industry))] {
		frameworks = append(frameworks, FrameworkApplicability{
			Framework: "SOC 2 Type II",
			Reason:    "customer trust baseline for technology and SaaS companies",
			Mandatory: false,
			Reference: "https://www.aicpa-cima.com/topic/audit-assurance/audit-and-assurance-greater-than-soc-2",
		})
	}

	if profile.UsesAIInProduction {
		frameworks = append(frameworks, FrameworkApplicability{
			Framework: "NIST AI RMF",
			Reason:    "organization operates AI systems in production",
			Mandatory: false,
			Reference: "https://www.nist.gov/itl/ai-risk-management-framework",
		})
	}

	if profile.FinancialServices {
		frameworks = append(frameworks,
			FrameworkApplicability{
				Framework: "NIST CSF 2.0",
				Reason:    "cybersecurity baseline for financial services",
				Mandatory: true,
				Reference: "https://www.nist.gov/cyberframework",
			},
			FrameworkApplicability{
				Framework: "FFIEC IT Handbook",
				Reason:    "examination requirements for financial institutions",
				Mandatory: true,
				Reference: "https://ithandbook.ffiec.gov/",
			},
		)
	}

	if profile.GovernmentContractor {
		frameworks = append(frameworks, FrameworkApplicability{
			Framework: "FedRAMP",
			Reason:    "cloud service authorization path for government customers",
			Mandatory: false,
			Reference: "https://www.fedramp.gov/",
		})
	}

	return frameworks
}

// ComplianceScore folds the applicability result into the compliance
// dimension. Used only inside the validation pipeline.
func ComplianceScore(profile OrganizationProfile, frameworks []FrameworkApplicability) ComplianceResult {
	result := ComplianceResult{Frameworks: frameworks}

	switch {
	case len(frameworks) > 0:
		result.Score = complianceScoreApplicable
	case profileHasSignal(profile):
		result.Score = complianceScoreSignalOnly
	default:
		result.Score = complianceScoreBlank
	}
	return result
}

// profileHasSignal reports whether any compliance-relevant attribute is
// set on the profile, regardless of whether a rule matched it.
func profileHasSignal(profile OrganizationProfile) bool {
	return profile.ProcessesPII ||
		profile.ProcessesPHI ||
		profile.ProcessesCardholderData ||
		profile.HandlesDoDData ||
		profile.UsesAIInProduction ||
		profile.GovernmentContractor ||
		profile.FinancialServices ||
		strings.TrimSpace(profile.Industry) != ""
}
