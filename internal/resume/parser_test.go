package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-intake/internal/extract"
	"github.com/jonathan/resume-intake/internal/ner"
	"github.com/jonathan/resume-intake/internal/types"
)

const sampleResumeText = `Jane Q. Public
jane.public@example.com
(555) 123-4567
Location: Austin, TX
Title: Senior Software Engineer
linkedin.com/in/janepublic
github.com/janepublic

Summary:
Seasoned backend specialist with 8+ years in software building distributed systems and leading infrastructure teams.

Skills: Python, React, AWS

Experience:
Tech Corp Inc
Senior Engineer
January 2020 - Present
Built distributed ingestion services.

Education:
B.S. Computer Science, State University, 2012`

func newTestParser(opts ...Option) *Parser {
	return New(DefaultParams(), nil, opts...)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	parser := newTestParser()
	ctx := context.Background()

	tests := []struct {
		name     string
		data     []byte
		filename string
		reason   string
	}{
		{
			name:     "blank filename",
			data:     []byte("content"),
			filename: "   ",
			reason:   "filename is required",
		},
		{
			name:     "empty data",
			data:     nil,
			filename: "resume.pdf",
			reason:   "file content is empty",
		},
		{
			name:     "oversized data",
			data:     bytes.Repeat([]byte("x"), DefaultParams().MaxInputBytes+1),
			filename: "resume.pdf",
			reason:   "file content exceeds size ceiling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := parser.Parse(ctx, tt.data, tt.filename)
			assert.Nil(t, record)

			var emptyErr *EmptyInputError
			require.ErrorAs(t, err, &emptyErr)
			assert.Equal(t, tt.reason, emptyErr.Reason)
			assert.Equal(t, "empty input: "+tt.reason, err.Error())
		})
	}
}

func TestParseNoSizeCeilingWhenDisabled(t *testing.T) {
	params := DefaultParams()
	params.MaxInputBytes = 0
	parser := New(params, nil)

	data := bytes.Repeat([]byte("x"), DefaultParams().MaxInputBytes+1)
	_, err := parser.Parse(context.Background(), data, "resume.txt")

	// Past the size check; fails later on the unsupported extension.
	var unsupportedErr *extract.UnsupportedFileTypeError
	assert.ErrorAs(t, err, &unsupportedErr)
}

func TestParseUnsupportedFileType(t *testing.T) {
	parser := newTestParser()

	record, err := parser.Parse(context.Background(), []byte("plain text"), "resume.txt")
	assert.Nil(t, record)

	var unsupportedErr *extract.UnsupportedFileTypeError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, "resume.txt", unsupportedErr.Filename)
}

func TestParseDOCXEndToEnd(t *testing.T) {
	parser := newTestParser()

	var paragraphs strings.Builder
	for _, line := range strings.Split(sampleResumeText, "\n") {
		fmt.Fprintf(&paragraphs, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, line)
	}
	doc := `<w:document><w:body>` + paragraphs.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	record, err := parser.Parse(context.Background(), buf.Bytes(), "resume.docx")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "Jane Q. Public", record.Name)
	assert.Equal(t, "jane.public@example.com", record.Email)
}

func TestParseTextFullRecord(t *testing.T) {
	parser := newTestParser()

	record := parser.ParseText(context.Background(), sampleResumeText)
	require.NotNil(t, record)

	assert.Equal(t, "Jane Q. Public", record.Name)
	assert.Equal(t, "jane.public@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	assert.Equal(t, "Senior Software Engineer", record.Title)
	assert.Equal(t, "Austin, TX", record.Location)
	assert.Equal(t, "Seasoned backend specialist with 8+ years in software building distributed systems and leading infrastructure teams.", record.Summary)
	assert.Subset(t, record.Skills, []string{"AWS", "Python", "React"})
	assert.Equal(t, "B.S. Computer Science, State University, 2012", record.Education)
	assert.Equal(t, "https://linkedin.com/in/janepublic", record.LinkedInURL)
	assert.Equal(t, "https://github.com/janepublic", record.GitHubURL)

	require.NotNil(t, record.YearsExperience)
	assert.Equal(t, 8, *record.YearsExperience)

	require.Len(t, record.Experience, 1)
	job := record.Experience[0]
	assert.Equal(t, "Tech Corp Inc", job.Company)
	assert.Equal(t, "Senior Engineer", job.Title)
	assert.Equal(t, "January 2020", job.StartDate)
	assert.Equal(t, "Present", job.EndDate)
}

func TestParseTextSentinelsAndEmptyValues(t *testing.T) {
	parser := newTestParser()

	record := parser.ParseText(context.Background(), "just some plain words here")
	require.NotNil(t, record)

	assert.Equal(t, types.UnknownName, record.Name)
	assert.Empty(t, record.Email)
	assert.Empty(t, record.Phone)
	assert.Empty(t, record.Title)
	assert.Empty(t, record.Summary)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Location)
	assert.Empty(t, record.LinkedInURL)
	assert.Empty(t, record.GitHubURL)
	assert.Nil(t, record.YearsExperience)

	// An absent section yields an empty slice, never nil.
	require.NotNil(t, record.Experience)
	assert.Empty(t, record.Experience)
}

type failingRecognizer struct{}

func (failingRecognizer) Entities(ctx context.Context, text string) ([]ner.Entity, error) {
	return nil, errors.New("model unavailable")
}

type staticRecognizer struct {
	entities []ner.Entity
}

func (s staticRecognizer) Entities(ctx context.Context, text string) ([]ner.Entity, error) {
	return s.entities, nil
}

func TestParseTextRecognizerFailureDegrades(t *testing.T) {
	parser := newTestParser(WithRecognizer(failingRecognizer{}))

	record := parser.ParseText(context.Background(), sampleResumeText)
	require.NotNil(t, record)

	// Pattern fallbacks still produce the full record.
	assert.Equal(t, "Jane Q. Public", record.Name)
	assert.Equal(t, "Austin, TX", record.Location)
}

func TestParseTextRecognizerEntitiesWin(t *testing.T) {
	parser := newTestParser(WithRecognizer(staticRecognizer{
		entities: []ner.Entity{
			{Text: "Janet Quinn Public", Label: ner.LabelPerson},
			{Text: "Round Rock, TX", Label: ner.LabelGPE},
		},
	}))

	record := parser.ParseText(context.Background(), sampleResumeText)
	require.NotNil(t, record)

	assert.Equal(t, "Janet Quinn Public", record.Name)
	assert.Equal(t, "Round Rock, TX", record.Location)
}
