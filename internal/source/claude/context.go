package claude

import (
	"strings"

	"github.com/grimoire-app/grimoire-backend/internal/domain"
)

// Keyword lists for classifying an example sentence's register when the
// model omits or mislabels its context type.
var (
	academicKeywords = []string{
		"research", "study", "theory", "hypothesis", "analysis",
		"experiment", "data", "scholar", "academic", "university",
		"thesis", "dissertation", "journal", "findings", "conclude",
	}

	businessKeywords = []string{
		"company", "business", "client", "customer", "market",
		"sales", "profit", "revenue", "meeting", "project",
		"deadline", "manager", "employee", "corporate", "office",
	}

	technicalKeywords = []string{
		"system", "software", "hardware", "code", "algorithm",
		"function", "parameter", "database", "network", "protocol",
		"interface", "configuration", "implementation",
	}

	formalKeywords = []string{
		"hereby", "therefore", "furthermore", "moreover",
		"shall", "cordially", "respectfully", "kindly",
		"sincerely", "distinguished", "honorable",
	}
)

// detectContext classifies an example sentence by keyword matching.
// The highest-scoring category wins; zero matches default to casual.
func detectContext(exampleText string) domain.ContextType {
	lower := strings.ToLower(exampleText)

	countMatches := func(keywords []string) int {
		n := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				n++
			}
		}
		return n
	}

	best := domain.ContextTypeCasual
	bestScore := 0

	for _, candidate := range []struct {
		ctx   domain.ContextType
		score int
	}{
		{domain.ContextTypeAcademic, countMatches(academicKeywords)},
		{domain.ContextTypeBusiness, countMatches(businessKeywords)},
		{domain.ContextTypeTechnical, countMatches(technicalKeywords)},
		{domain.ContextTypeFormal, countMatches(formalKeywords)},
	} {
		if candidate.score > bestScore {
			best = candidate.ctx
			bestScore = candidate.score
		}
	}

	return best
}
