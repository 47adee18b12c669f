package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
)

func TestClean_Empty(t *testing.T) {
	if got := htmlsanitize.Clean(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestClean_PlainText(t *testing.T) {
	if got := htmlsanitize.Clean("Hello, World!"); got != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestClean_TrimsWhitespace(t *testing.T) {
	if got := htmlsanitize.Clean("  hi there \n"); got != "hi there" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestClean_StripsTagsKeepsText(t *testing.T) {
	got := htmlsanitize.Clean("<p><strong>Bold</strong> and plain</p>")
	if got != "Bold and plain" {
		t.Errorf("expected tags stripped with text kept, got %q", got)
	}
}

func TestClean_DropsScriptBody(t *testing.T) {
	got := htmlsanitize.Clean("hello<script>alert(1)</script>")
	if strings.Contains(got, "alert") {
		t.Errorf("expected script body dropped, got %q", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("expected surrounding text kept, got %q", got)
	}
}

func TestClean_StripsEventAttributes(t *testing.T) {
	got := htmlsanitize.Clean(`<a href="x" onclick="alert(1)">link</a>`)
	if strings.Contains(got, "onclick") || strings.Contains(got, "href") {
		t.Errorf("expected attributes removed, got %q", got)
	}
	if got != "link" {
		t.Errorf("expected link text kept, got %q", got)
	}
}

func TestCleanAll_DropsEmptiedEntries(t *testing.T) {
	got := htmlsanitize.CleanAll([]string{"Go", "<script>x()</script>", " REST "})
	if len(got) != 2 || got[0] != "Go" || got[1] != "REST" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestCleanAll_Nil(t *testing.T) {
	if got := htmlsanitize.CleanAll(nil); got != nil {
		t.Errorf("expected nil passthrough, got %v", got)
	}
}
