package tui

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/amishk599/jobdesk/internal/model"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "section": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "table": true, "tr": true,
}

// MarkupText renders job description markup as plain terminal text. Block
// elements start new lines and list items are bulleted.
func MarkupText(m model.Markup) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(m)))
	if err != nil {
		return string(m)
	}

	var b strings.Builder
	writeNodes(&b, doc.Find("body"))

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeNodes(b *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch name := goquery.NodeName(c); {
		case name == "#text":
			b.WriteString(collapseSpace(c.Text()))
		case name == "br":
			b.WriteByte('\n')
		case name == "li":
			b.WriteByte('\n')
			b.WriteString("• ")
			writeNodes(b, c)
			b.WriteByte('\n')
		case blockElements[name]:
			b.WriteByte('\n')
			writeNodes(b, c)
			b.WriteByte('\n')
		default:
			writeNodes(b, c)
		}
	})
}

// collapseSpace folds whitespace runs into single spaces, keeping one
// leading or trailing space so adjacent inline text does not run together.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\r\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\r\n") != s {
		out += " "
	}
	return out
}

// wordWrap wraps each line of text to width.
func wordWrap(text string, width int) string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
