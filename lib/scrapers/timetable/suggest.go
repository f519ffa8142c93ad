package timetable

import (
	"sort"
	"vt-timetable/lib/textutil"

	"github.com/antzucaro/matchr"
)

// SuggestSubjects ranks subjects by similarity to the query and returns
// the top n. Useful for "did you mean" output when a search comes back
// empty or a subject code is mistyped.
func SuggestSubjects(subjects []Subject, query string, n int) []Subject {
	query = textutil.NormalizeName(query)

	type scored struct {
		subject    Subject
		similarity float64
	}
	ranked := make([]scored, len(subjects))
	for i, s := range subjects {
		codeSim := matchr.JaroWinkler(query, textutil.NormalizeName(s.Code), false)
		nameSim := matchr.JaroWinkler(query, textutil.NormalizeName(s.Name), false)
		sim := codeSim
		if nameSim > sim {
			sim = nameSim
		}
		ranked[i] = scored{subject: s, similarity: sim}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].similarity > ranked[b].similarity
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]Subject, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].subject
	}
	return out
}
