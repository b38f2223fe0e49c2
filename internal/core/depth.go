package core

import "strings"

// DepthVocabulary lists the column names recognized as a depth axis, in
// priority order. Order matters: exact matches are tried first-to-last, so
// keep this a slice, not a set.
var DepthVocabulary = []string{"DEPTH", "MD", "TVD", "DEPT", "PROFUNDIDADE", "PROF"}

// ResolveDepthColumn determines which column of the dataset holds measured
// depth. Resolution is total for non-empty datasets:
//
//  1. first vocabulary name present verbatim among the columns
//  2. first column (in dataset order) whose name contains any vocabulary
//     term, case-insensitively
//  3. the first column by position
//
// A dataset with zero columns is a caller error and returns "".
func ResolveDepthColumn(d *Dataset) string {
	if len(d.Columns) == 0 {
		return ""
	}

	for _, want := range DepthVocabulary {
		if d.Has(want) {
			return want
		}
	}

	for _, c := range d.Columns {
		lower := strings.ToLower(c.Name)
		for _, want := range DepthVocabulary {
			if strings.Contains(lower, strings.ToLower(want)) {
				return c.Name
			}
		}
	}

	return d.Columns[0].Name
}
