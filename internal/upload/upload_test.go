package upload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/resumescan/internal/errors"
	"github.com/agbru/resumescan/internal/flow"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		file   flow.FileRef
		accept bool
	}{
		{"pdf by content type", flow.FileRef{Name: "resume.pdf", ContentType: ContentTypePDF}, true},
		{"pdf content type with odd name", flow.FileRef{Name: "resume", ContentType: ContentTypePDF}, true},
		{"docx by suffix", flow.FileRef{Name: "resume.docx"}, true},
		{"docx suffix with unrelated type", flow.FileRef{Name: "resume.docx", ContentType: "text/plain"}, true},
		{"pdf name without content type", flow.FileRef{Name: "resume.pdf"}, false},
		{"plain text", flow.FileRef{Name: "resume.txt", ContentType: "text/plain"}, false},
		{"legacy doc", flow.FileRef{Name: "resume.doc", ContentType: "application/msword"}, false},
		{"uppercase docx suffix", flow.FileRef{Name: "RESUME.DOCX"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.file)
			if tt.accept {
				assert.NoError(t, err)
				return
			}
			var unsupported apperrors.UnsupportedFileError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.file.Name, unsupported.Name)
			assert.Contains(t, err.Error(), apperrors.UnsupportedFileMessage)
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pdf", KindOf(flow.FileRef{Name: "resume.pdf", ContentType: ContentTypePDF}))
	assert.Equal(t, "docx", KindOf(flow.FileRef{Name: "resume.docx", ContentType: ContentTypeDOCX}))
}

func TestDeclaredContentType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ContentTypePDF, DeclaredContentType("resume.pdf"))
	assert.Equal(t, ContentTypePDF, DeclaredContentType("RESUME.PDF"))
	assert.Equal(t, ContentTypeDOCX, DeclaredContentType("resume.docx"))
	assert.Equal(t, "", DeclaredContentType("resume"))
	assert.NotEqual(t, ContentTypePDF, DeclaredContentType("resume.txt"))
}

func TestCleanPath(t *testing.T) {
	t.Parallel()
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		raw  string
		want string
	}{
		{"  /tmp/resume.pdf \n", "/tmp/resume.pdf"},
		{"'/tmp/my resume.pdf'", "/tmp/my resume.pdf"},
		{`"/tmp/my resume.pdf"`, "/tmp/my resume.pdf"},
		{`/tmp/my\ resume.pdf`, "/tmp/my resume.pdf"},
		{"file:///tmp/resume.docx", "/tmp/resume.docx"},
		{"~/resume.pdf", filepath.Join(home, "resume.pdf")},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanPath(tt.raw), "CleanPath(%q)", tt.raw)
	}
}

func TestOpenAndAccept(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	pdfPath := writeFile(t, dir, "resume.pdf", "%PDF-1.4 not really")
	txtPath := writeFile(t, dir, "resume.txt", "plain")
	docxPath := writeFile(t, dir, "my resume.docx", "PK")

	t.Run("pdf", func(t *testing.T) {
		ref, err := Accept(pdfPath)
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", ref.Name)
		assert.Equal(t, ContentTypePDF, ref.ContentType)
		assert.Equal(t, int64(len("%PDF-1.4 not really")), ref.Size)
		assert.Equal(t, pdfPath, ref.Path)
	})

	t.Run("dropped docx with quotes", func(t *testing.T) {
		ref, err := Accept("'" + docxPath + "'")
		require.NoError(t, err)
		assert.Equal(t, "my resume.docx", ref.Name)
	})

	t.Run("txt rejected", func(t *testing.T) {
		_, err := Accept(txtPath)
		var unsupported apperrors.UnsupportedFileError
		assert.ErrorAs(t, err, &unsupported)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope.pdf"))
		assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Open(dir)
		var ve apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Open("   ")
		var ve apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestInspect_UnreadableDocumentsAreReported(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	pdfRef, err := Open(writeFile(t, dir, "broken.pdf", "not a pdf"))
	require.NoError(t, err)
	details, err := Inspect(pdfRef)
	assert.Error(t, err)
	assert.Equal(t, "pdf", details.Kind)
	assert.False(t, details.Readable)
	assert.Equal(t, "PDF, preview unavailable", details.Summary())

	docxRef, err := Open(writeFile(t, dir, "broken.docx", "not a zip"))
	require.NoError(t, err)
	details, err = Inspect(docxRef)
	assert.Error(t, err)
	assert.Equal(t, "docx", details.Kind)
	assert.False(t, details.Readable)

	_, err = Inspect(flow.FileRef{Name: "remote.pdf"})
	assert.Error(t, err)
}

func TestDetails_Summary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "PDF, 1 page", Details{Kind: "pdf", Pages: 1, Readable: true}.Summary())
	assert.Equal(t, "PDF, 3 pages", Details{Kind: "pdf", Pages: 3, Readable: true}.Summary())
	assert.Equal(t, "DOCX", Details{Kind: "docx", Readable: true}.Summary())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}
