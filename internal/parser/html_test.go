package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_ExtractsBodyText(t *testing.T) {
	input := `<html><head><title>Committee Report</title>
<script>var x = "not content";</script>
<style>p { color: red }</style></head>
<body>
<nav>Home | About</nav>
<h1>Planning Committee</h1>
<p>The application raises <b>traffic</b> concerns.</p>
<ul><li>parking provision</li></ul>
<footer>page footer</footer>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse([]byte(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	text := doc.Pages[0].Text
	for _, want := range []string{"Planning Committee", "traffic concerns", "parking provision"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected page text to contain %q, got %q", want, text)
		}
	}
	for _, unwanted := range []string{"not content", "color: red", "Home | About", "page footer"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("expected %q to be excluded, got %q", unwanted, text)
		}
	}
}

func TestHTMLParser_NoBodyContent(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse([]byte("<html><head></head><body></body></html>"), "empty.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages, got %d", len(doc.Pages))
	}
}
