package domain

import "testing"

func TestResolveJobTitle(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"node-js-developer", "Node.js Developer"},
		{"ui-ux-designer", "UI/UX Designer"},
		{"seo-expert", "SEO Expert"},
		{"project-manager", "Project Manager"},
		{"quantum-engineer", "quantum-engineer"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ResolveJobTitle(tt.code); got != tt.want {
				t.Errorf("ResolveJobTitle(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestResolveJobTitle_Stable(t *testing.T) {
	first := ResolveJobTitle("seo-expert")
	second := ResolveJobTitle("seo-expert")
	if first != second {
		t.Errorf("repeated resolution differs: %q vs %q", first, second)
	}
}
