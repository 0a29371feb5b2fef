package recommend

import "github.com/talentsift/talentsift/internal/catalog"

// filterCandidates keeps individual solutions, treating an absent
// solution_type as individual. When filtering would eliminate every
// candidate, the unfiltered input is returned instead so downstream stages
// always have something to work with.
func filterCandidates(docs []catalog.Document) []catalog.Document {
	filtered := make([]catalog.Document, 0, len(docs))
	for _, d := range docs {
		st := d.Record.SolutionType
		if st == "" || st == catalog.SolutionTypeIndividual {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == 0 {
		return docs
	}
	return filtered
}
