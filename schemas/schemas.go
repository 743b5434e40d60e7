// Package schemas embeds the JSON Schemas for catalog and candidate documents so the
// binary validates input without depending on the working directory.
package schemas

import _ "embed"

// InternshipCatalog validates a static catalog file (a JSON array of postings).
//
//go:embed internship_catalog.schema.json
var InternshipCatalog string

// CandidateProfile validates a candidate profile document.
//
//go:embed candidate_profile.schema.json
var CandidateProfile string

// ByName maps the schema file names to their embedded content.
var ByName = map[string]string{
	"internship_catalog.schema.json": InternshipCatalog,
	"candidate_profile.schema.json":  CandidateProfile,
}
