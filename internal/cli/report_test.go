package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/resumescan/internal/catalog"
	"github.com/agbru/resumescan/internal/flow"
)

func TestDisplayReport(t *testing.T) {
	withPlainTheme(t)
	session := flow.Session{
		SelectedFile: &flow.FileRef{Name: "resume.pdf"},
		Location:     "Austin, TX",
	}
	var buf bytes.Buffer

	DisplayReport(catalog.Default().BuildReport(session), &buf)

	out := buf.String()
	for _, want := range []string{
		"Analysis Complete",
		"Analyzed: resume.pdf",
		"Skills Analysis",
		"Software Engineering",
		"95%  147 jobs",
		"Matching Skills:   React, TypeScript, JavaScript, CSS, Git",
		"Skills to Improve: AWS, Docker, PostgreSQL",
		"Missing Skills:    Python, Kubernetes, GraphQL, Jest",
		"Job Matches",
		"Jobs in Austin, TX",
		"Senior Software Engineer  92% match",
		"TechCorp Inc. | Austin, TX | $120k - $160k | Full-time",
		"Skills: React ✓, TypeScript ✓, Node.js, AWS",
		"Posted 2 days ago",
		"StartupXYZ",
		"InnovateLab",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestDisplayReport_DefaultLocation(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer
	DisplayReport(catalog.Default().BuildReport(flow.Session{}), &buf)
	if !strings.Contains(buf.String(), "Jobs in San Francisco, CA") {
		t.Errorf("report should fall back to San Francisco, CA:\n%s", buf.String())
	}
}

func TestDisplayFileSummary(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer
	DisplayFileSummary(flow.FileRef{Name: "cv.docx", Size: 2048}, "DOCX", &buf)
	if got, want := buf.String(), "File:     cv.docx (2.0 KiB, DOCX)\n"; got != want {
		t.Errorf("DisplayFileSummary = %q, want %q", got, want)
	}
}
