package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercase and punctuation", "Hello, World!", "hello world"},
		{"url removed", "Visit https://example.com/jobs now", "visit now"},
		{"www removed", "see www.example.com for more", "see for more"},
		{"email removed", "email me at hr@example.com please", "email me at please"},
		{"phone removed", "Call 0912345678 today", "call today"},
		{"digits removed", "Node.js & C++ 2024", "node js c"},
		{"vietnamese kept", "Lập Trình Viên!", "lập trình viên"},
		{"underscore kept", "snake_case", "snake_case"},
		{"whitespace collapsed", "  a\t\tb \n c  ", "a b c"},
		{"only noise", "!!! 123 ???", ""},
		{"url before no-break space", "see http://x.com\u00a0python developer", "see python developer"},
		{"email before no-break space", "mail hr@x.com\u00a0python", "mail python"},
		{"url before ideographic space", "www.x.vn\u3000golang", "golang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_DecomposedInputIsComposed(t *testing.T) {
	decomposed := norm.NFD.String("Kinh Nghiệm")
	assert.Equal(t, "kinh nghiệm", Normalize(decomposed))
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("Kỹ sư phần mềm (Golang), 3+ năm kinh nghiệm - https://x.io")
	assert.Equal(t, once, Normalize(once))
}
