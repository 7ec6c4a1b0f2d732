package domain

// jobTitles maps the posting codes used by the careers page to their display
// labels. Static, constructed once at process start.
var jobTitles = map[string]string{
	"node-js-developer":             "Node.js Developer",
	"ui-ux-designer":                "UI/UX Designer",
	"internee-mobile-app-developer": "Internee Mobile App Developer",
	"jr-web-developer":              "Jr. Web Developer",
	"sr-web-developer":              "Sr. Web Developer",
	"jr-mobile-app-developer":       "Jr. Mobile App Developer",
	"sr-mobile-app-developer":       "Sr. Mobile App Developer",
	"graphic-designer":              "Graphic Designer",
	"digital-marketing-specialist":  "Digital Marketing Specialist",
	"project-manager":               "Project Manager",
	"seo-expert":                    "SEO Expert",
}

// ResolveJobTitle returns the display label for a job code. Unknown codes are
// echoed back unchanged.
func ResolveJobTitle(code string) string {
	if label, ok := jobTitles[code]; ok {
		return label
	}
	return code
}
