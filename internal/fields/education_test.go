package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducation(t *testing.T) {
	e := NewDefault()

	t.Run("labeled section collapsed", func(t *testing.T) {
		text := "Education:\nStanford University\nBS Computer Science, 2016\n\nSkills: Python"
		assert.Equal(t, "Stanford University BS Computer Science, 2016", e.Education(text))
	})

	t.Run("academic background label", func(t *testing.T) {
		text := "Academic Background:\nMIT, BS Mathematics 2014"
		assert.Equal(t, "MIT, BS Mathematics 2014", e.Education(text))
	})

	t.Run("stops at experience section", func(t *testing.T) {
		text := "Education:\nStanford University, BS CS\nExperience:\nTech Corp Inc"
		got := e.Education(text)
		assert.Equal(t, "Stanford University, BS CS", got)
	})

	t.Run("too short treated as missing", func(t *testing.T) {
		assert.Equal(t, "", e.Education("Education:\nMIT\n\nSkills:"))
	})

	t.Run("truncated to maximum length", func(t *testing.T) {
		long := strings.Repeat("Stanford University BS CS ", 30)
		got := e.Education("Education:\n" + long)
		assert.Len(t, got, e.Config().EducationMaxLen)
	})

	t.Run("no section", func(t *testing.T) {
		assert.Equal(t, "", e.Education("Jane Doe\nSkills: Python"))
	})
}
