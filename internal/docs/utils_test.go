package docs

import "testing"

func TestContainsPathTraversal(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"docs", false},
		{"docs/api", false},
		{"/var/www/docs", false},
		{"..", true},
		{"../docs", true},
		{"docs/../secret", true},
		{"docs\\..\\secret", true},
		{"docs/..", true},
		{"..docs", false},
		{"docs..", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := containsPathTraversal(tt.path); got != tt.want {
			t.Errorf("containsPathTraversal(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
