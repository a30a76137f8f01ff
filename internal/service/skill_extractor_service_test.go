package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_FindsKnownTerms(t *testing.T) {
	extractor := NewSkillExtractorService()

	skills := extractor.ExtractSkills("We need a Software Engineer with React, Node.js, MongoDB, and cloud experience")

	assert.Contains(t, skills.TechnicalSkills, "react")
	assert.Contains(t, skills.TechnicalSkills, "node.js")
	assert.Contains(t, skills.TechnicalSkills, "mongodb")
	// "cloud" is not part of the dictionary.
	assert.NotContains(t, skills.TechnicalSkills, "cloud")
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	extractor := NewSkillExtractorService()

	upper := extractor.ExtractSkills("PYTHON and POSTGRESQL required, strong COMMUNICATION skills")
	lower := extractor.ExtractSkills("python and postgresql required, strong communication skills")

	assert.Equal(t, lower, upper)
	assert.Contains(t, upper.TechnicalSkills, "python")
	assert.Contains(t, upper.TechnicalSkills, "postgresql")
	assert.Contains(t, upper.SoftSkills, "communication")
}

func TestExtractSkills_DictionaryOrder(t *testing.T) {
	extractor := NewSkillExtractorService()

	// Input order is postgresql first; output must follow dictionary order.
	// "sql" matches too since "postgresql" contains it as a substring.
	skills := extractor.ExtractSkills("postgresql, python and react experience")

	assert.Equal(t, []string{"react", "python", "sql", "postgresql"}, skills.TechnicalSkills)
}

func TestExtractSkills_EmptyInput(t *testing.T) {
	extractor := NewSkillExtractorService()

	skills := extractor.ExtractSkills("")

	assert.Empty(t, skills.TechnicalSkills)
	assert.Empty(t, skills.SoftSkills)
	assert.Empty(t, skills.All())
}

func TestExtractedSkills_All(t *testing.T) {
	skills := ExtractedSkills{
		TechnicalSkills: []string{"python", "docker"},
		SoftSkills:      []string{"leadership"},
	}

	assert.Equal(t, []string{"python", "docker", "leadership"}, skills.All())
}
