package fields

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-intake/internal/types"
)

func TestExperience_SingleBlock(t *testing.T) {
	e := NewDefault()
	text := "Experience:\nTech Corp Inc\nSenior Engineer\nJanuary 2020 - Present\nSan Francisco, CA"

	entries := e.Experience(text)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Tech Corp Inc", entry.Company)
	assert.Equal(t, "Senior Engineer", entry.Title)
	assert.Equal(t, "January 2020", entry.StartDate)
	assert.Equal(t, "Present", entry.EndDate)
	assert.Equal(t, "San Francisco, CA", entry.Location)
}

func TestExperience_MultipleBlocks(t *testing.T) {
	e := NewDefault()
	text := strings.Join([]string{
		"Work Experience:",
		"Tech Corp Inc",
		"Senior Engineer",
		"2020 - Present",
		"",
		"Data Systems LLC",
		"Backend Developer",
		"2017 - 2020",
	}, "\n")

	entries := e.Experience(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tech Corp Inc", entries[0].Company)
	assert.Equal(t, "Data Systems LLC", entries[1].Company)
	assert.Equal(t, "2017", entries[1].StartDate)
	assert.Equal(t, "2020", entries[1].EndDate)
}

func TestExperience_Sentinels(t *testing.T) {
	e := NewDefault()

	t.Run("missing title filled with sentinel", func(t *testing.T) {
		text := "Experience:\nTech Corp Inc\nJune 2019 - July 2021\nSome project work done here"
		entries := e.Experience(text)
		require.Len(t, entries, 1)
		assert.Equal(t, "Tech Corp Inc", entries[0].Company)
		assert.Equal(t, types.UnknownPosition, entries[0].Title)
	})

	t.Run("missing company filled with sentinel", func(t *testing.T) {
		text := "Experience:\nSenior Engineer\n2018 - 2020\nBuilt the ingestion service"
		entries := e.Experience(text)
		require.Len(t, entries, 1)
		assert.Equal(t, types.UnknownCompany, entries[0].Company)
		assert.Equal(t, "Senior Engineer", entries[0].Title)
	})

	t.Run("block with neither company nor title dropped", func(t *testing.T) {
		text := "Experience:\nDid a variety of things\n2018 - 2020\nMore detail about the things"
		assert.Empty(t, e.Experience(text))
	})
}

func TestExperience_Caps(t *testing.T) {
	e := NewDefault()

	var blocks []string
	for i := 0; i < 8; i++ {
		blocks = append(blocks, fmt.Sprintf("Company %d Inc\nSoftware Engineer\n201%d - 2020", i, i))
	}
	text := "Experience:\n" + strings.Join(blocks, "\n\n")

	entries := e.Experience(text)
	assert.Len(t, entries, e.Config().MaxExperience)
}

func TestExperience_DescriptionCap(t *testing.T) {
	e := NewDefault()
	text := strings.Join([]string{
		"Experience:",
		"Tech Corp Inc",
		"Senior Engineer",
		"2020 - Present",
		"San Francisco, CA",
		"Line one of description",
		"Line two of description",
		"Line three of description",
		"Line four of description",
	}, "\n")

	entries := e.Experience(text)
	require.Len(t, entries, 1)
	assert.Len(t, strings.Split(entries[0].Description, "\n"), e.Config().MaxDescriptionLines)
}

func TestExperience_ShortBlocksSkipped(t *testing.T) {
	e := NewDefault()
	text := "Experience:\nTech Inc\n2020\n\nData Systems Corp\nSenior Engineer\n2017 - 2019"

	entries := e.Experience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Data Systems Corp", entries[0].Company)
}

func TestExperience_StopsAtNextSection(t *testing.T) {
	e := NewDefault()
	text := "Experience:\nTech Corp Inc\nSenior Engineer\n2020 - Present\nEducation:\nStanford University, BS CS"

	entries := e.Experience(text)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Description, "Stanford")
}

func TestExperience_NoSection(t *testing.T) {
	e := NewDefault()
	assert.Nil(t, e.Experience("Jane Doe\nSkills: Python"))
}
