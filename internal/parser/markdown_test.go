package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_StripsMarkup(t *testing.T) {
	input := "# Local Plan\n\nThe **green belt** boundary stays unchanged.\n\n- parking\n- traffic\n"
	p := &MarkdownParser{}
	doc, err := p.Parse([]byte(input), "plan.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	text := doc.Pages[0].Text
	for _, want := range []string{"Local Plan", "green belt", "parking", "traffic"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected page text to contain %q, got %q", want, text)
		}
	}
	for _, markup := range []string{"#", "**", "- "} {
		if strings.Contains(text, markup) {
			t.Errorf("expected markup %q to be stripped, got %q", markup, text)
		}
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(nil, "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages, got %d", len(doc.Pages))
	}
}

func TestMarkdownParser_CodeBlockTextIsKept(t *testing.T) {
	input := "Intro paragraph.\n\n```\nheight limit 12m\n```\n"
	p := &MarkdownParser{}
	doc, err := p.Parse([]byte(input), "notes.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if !strings.Contains(doc.Pages[0].Text, "height limit 12m") {
		t.Errorf("expected code block text to be searchable, got %q", doc.Pages[0].Text)
	}
}
