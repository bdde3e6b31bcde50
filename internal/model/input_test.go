package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSubjectFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := writeDefinition(t, dir, "analysis.txt", `UE
steelblue
Tu 8:00-9:30 Audimax
Th 10.00-11.30
`)

	// Act
	subject, err := ParseSubjectFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "analysis", subject.Name)
	assert.Equal(t, RequiredOne, subject.Kind)
	assert.Equal(t, Color{70, 130, 180}, subject.Color)
	require.Len(t, subject.Slots, 2)
	assert.Equal(t, TimeSlot{Day: 1, Start: 8 * 60, End: 9*60 + 30, Location: "Audimax"}, subject.Slots[0])
	assert.Equal(t, TimeSlot{Day: 3, Start: 10 * 60, End: 11*60 + 30}, subject.Slots[1])
}

func TestParseSubjectFileWithoutColor(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := writeDefinition(t, dir, "mechanics.txt", `fill-all
Mo 11:00-12:30
Wednesday 11:00-12:00
`)

	// Act
	subject, err := ParseSubjectFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, FillAll, subject.Kind)
	assert.Equal(t, DefaultColor, subject.Color)
	require.Len(t, subject.Slots, 2)
	assert.Equal(t, 2, subject.Slots[1].Day)
}

func TestParseSubjectFileErrors(t *testing.T) {
	scenarios := map[string]string{
		"unknown kind":    "XX\nMo 8:00-9:00\n",
		"empty file":      "\n\n",
		"no slots":        "UE\nsteelblue\n",
		"bad weekday":     "UE\nXx 8:00-9:00\n",
		"bad time line":   "UE\nMo eight to nine\n",
		"inverted range":  "UE\nMo 9:00-8:00\n",
		"misaligned time": "UE\nMo 8:01-9:00\n",
		"self overlap":    "UE\nMo 8:00-9:30\nMo 9:00-10:00\n",
	}

	for name, content := range scenarios {
		t.Run(name, func(t *testing.T) {
			// Arrange
			path := writeDefinition(t, t.TempDir(), "broken.txt", content)

			// Act
			_, err := ParseSubjectFile(path)

			// Assert
			assert.Error(t, err)
		})
	}
}

func TestLoadSubjectsOrderedByFilename(t *testing.T) {
	// Arrange: file-name order decides who wins slot conflicts, so it must
	// be stable regardless of directory enumeration.
	dir := t.TempDir()
	writeDefinition(t, dir, "b_physics.txt", "UE\nMo 8:00-9:00\n")
	writeDefinition(t, dir, "a_algebra.txt", "UE\nMo 8:00-9:00\n")
	writeDefinition(t, dir, "notes.md", "not a subject")

	// Act
	subjects, err := LoadSubjects(dir)

	// Assert
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "a_algebra", subjects[0].Name)
	assert.Equal(t, "b_physics", subjects[1].Name)
}

func TestLoadSubjectsEmptyDir(t *testing.T) {
	// Act
	_, err := LoadSubjects(t.TempDir())

	// Assert
	assert.Error(t, err)
}

func TestSubjectsFromJSON(t *testing.T) {
	// Arrange
	path := writeDefinition(t, t.TempDir(), "subjects.json", `[
		{
			"name": "analysis",
			"kind": "required-one",
			"color": "#4682b4",
			"slots": [
				{"day": "Tuesday", "start": "8:00", "end": "9:30", "location": "Audimax"},
				{"day": "Thu", "start": "10:00", "end": "11:30"}
			]
		},
		{
			"name": "mechanics",
			"kind": "VO",
			"slots": [{"day": "Mo", "start": "11:00", "end": "12:30"}]
		}
	]`)

	// Act
	subjects, err := SubjectsFromJSON(path)

	// Assert
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, RequiredOne, subjects[0].Kind)
	assert.Equal(t, Color{70, 130, 180}, subjects[0].Color)
	assert.Equal(t, "Audimax", subjects[0].Slots[0].Location)
	assert.Equal(t, FillAll, subjects[1].Kind)
	assert.Equal(t, DefaultColor, subjects[1].Color)
}

func TestParseColor(t *testing.T) {
	// Act + Assert
	scenarios := []struct {
		line  string
		color Color
		valid bool
	}{
		{"steelblue", Color{70, 130, 180}, true},
		{"#4682b4", Color{70, 130, 180}, true},
		{"#fff", Color{255, 255, 255}, true},
		{"70,130,180", Color{70, 130, 180}, true},
		{"(70, 130, 180)", Color{70, 130, 180}, true},
		{"300,1,1", Color{}, false},
		{"Mo 8:00-9:00", Color{}, false},
		{"notacolorname", Color{}, false},
	}
	for _, scenario := range scenarios {
		color, valid := ParseColor(scenario.line)
		assert.Equal(t, scenario.valid, valid, scenario.line)
		if scenario.valid {
			assert.Equal(t, scenario.color, color, scenario.line)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	// Act + Assert
	for token, expected := range map[string]int{
		"Mo": 0, "tu": 1, "We": 2, "Thursday": 3, "fri": 4, "Sa": 5, "su": 6,
	} {
		day, err := ParseWeekday(token)
		require.NoError(t, err, token)
		assert.Equal(t, expected, day, token)
	}

	for _, token := range []string{"", "M", "Xx", "Monntag"} {
		_, err := ParseWeekday(token)
		assert.Error(t, err, token)
	}
}
