package skills

// maxSuggestions caps the related-skill list.
const maxSuggestions = 8

type skillGroup struct {
	name   string
	skills []string
}

// skillGroups clusters skills that commonly appear together in internship postings.
var skillGroups = []skillGroup{
	{"Programming", []string{"JavaScript", "Python", "Java", "C++", "HTML", "CSS", "React", "Node.js"}},
	{"Data", []string{"Excel", "SQL", "MongoDB", "Data Analysis", "R Programming", "MATLAB"}},
	{"Design", []string{"Photoshop", "Canva", "Graphic Design", "Video Editing", "AutoCAD"}},
	{"Office", []string{"MS Office", "Word", "PowerPoint", "Excel", "Email", "Documentation"}},
	{"Communication", []string{"Hindi", "English", "Communication", "Content Writing", "Translation"}},
	{"Marketing", []string{"Digital Marketing", "Social Media", "SEO", "WhatsApp Business", "Sales"}},
	{"Management", []string{"Leadership", "Project Management", "Time Management", "HR"}},
	{"Technical", []string{"Computer Basics", "Internet", "Typing", "Git", "Docker", "AWS"}},
}

// SuggestRelated returns up to eight skills from the groups the existing skills belong to,
// excluding skills already held.
func SuggestRelated(existing []string) []string {
	have := keySet(existing)
	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)

	for _, group := range skillGroups {
		inGroup := false
		for _, skill := range group.skills {
			if have[Key(skill)] {
				inGroup = true
				break
			}
		}
		if !inGroup {
			continue
		}

		for _, skill := range group.skills {
			key := Key(skill)
			if have[key] || seen[key] {
				continue
			}
			seen[key] = true
			suggestions = append(suggestions, skill)
			if len(suggestions) == maxSuggestions {
				return suggestions
			}
		}
	}

	return suggestions
}
