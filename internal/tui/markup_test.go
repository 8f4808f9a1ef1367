package tui

import (
	"testing"

	"github.com/amishk599/jobdesk/internal/model"
)

func TestMarkupText(t *testing.T) {
	tests := []struct {
		name string
		in   model.Markup
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Hello world", "Hello world"},
		{"inline tags", "<p>Build <b>great</b> things</p>", "Build great things"},
		{"paragraphs", "<p>One</p><p>Two</p>", "One\nTwo"},
		{"line break", "Line<br>two", "Line\ntwo"},
		{"list", "<ul><li>Coffee</li><li>Tea</li></ul>", "• Coffee\n• Tea"},
		{"whitespace collapsed", "<p>  lots   of\n\n space </p>", "lots of space"},
		{"heading then text", "<h2>Perks</h2>Remote", "Perks\nRemote"},
		{"entities", "<p>R&amp;D &lt;team&gt;</p>", "R&D <team>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkupText(tt.in); got != tt.want {
				t.Errorf("MarkupText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("aaa bbb ccc\nddd", 7)
	want := "aaa bbb\nccc\nddd"
	if got != want {
		t.Errorf("wordWrap = %q, want %q", got, want)
	}
}
