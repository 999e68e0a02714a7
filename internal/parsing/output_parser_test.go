package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestParseLLMOutput_EmptyReply(t *testing.T) {
	for _, text := range []string{"", "   \n\n", "no headers at all\njust prose"} {
		got := ParseLLMOutput(text)
		require.NotNil(t, got)

		assert.Nil(t, got.Name)
		assert.Nil(t, got.Email)
		assert.Nil(t, got.ExperienceYears)
		assert.NotNil(t, got.Education)
		assert.Empty(t, got.Education)
		assert.NotNil(t, got.Experience)
		assert.NotNil(t, got.TechnicalSkills)
		assert.NotNil(t, got.Languages)
		assert.NotNil(t, got.Projects)
		assert.NotNil(t, got.Achievements)
	}
}

func TestParseLLMOutput_ExperienceContinuation(t *testing.T) {
	text := "**Experience**\nSenior Engineer at Acme Corp (2019-2022)\nLed a team of 5 engineers."

	got := ParseLLMOutput(text)

	require.Len(t, got.Experience, 1)
	assert.Equal(t, types.ExperienceEntry{
		Role:        "Senior Engineer",
		Company:     "Acme Corp",
		Duration:    "2019-2022",
		Description: "Led a team of 5 engineers.",
	}, got.Experience[0])
}

func TestParseLLMOutput_SectionIsolation(t *testing.T) {
	text := `**Technical Skills**
Go, Python
**Hobbies**
Chess, hiking
**Email**
jane@example.com
**Name**
jane smith
**Education**
B.Tech, IIT Madras (2015-2019)
**Achievements**
- Won the regional hackathon`

	var got *types.ParsedCandidate
	require.NotPanics(t, func() { got = ParseLLMOutput(text) })

	assert.Equal(t, []string{"Go", "Python"}, got.TechnicalSkills)
	assert.Equal(t, []string{"Go", "Python"}, got.Skills)
	require.NotNil(t, got.Email)
	assert.Equal(t, "jane@example.com", *got.Email)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Jane Smith", *got.Name)
	assert.Equal(t, []types.EducationEntry{
		{Degree: "B.Tech", Institution: "IIT Madras", Years: "2015-2019"},
	}, got.Education)
	assert.Equal(t, []string{"Won the regional hackathon"}, got.Achievements)
	assert.Empty(t, got.SoftSkills)
}

func TestParseLLMOutput_FullReply(t *testing.T) {
	text := "```\n" + `**Name**
Jane Smith
**Email**
not-an-email
**Phone**
+1 555 0100
**Location**
N/A
**LinkedIn**
linkedin.com/in/janesmith
**GitHub**
Not provided
**Experience Years**
About 7 years
**Education**
- MIT: Master of Science (2020-2022)
**Experience**
- Google: Software Engineer (2018-2020)
Built search infrastructure.
**Technical Skills**
Go, Kubernetes
**Soft Skills**
- Leadership
- Communication
**Certifications**
Not provided
**Languages**
English (Native), Tamil (Fluent)
**Projects**
- Resume Parser: Extracts candidates (Go, PostgreSQL)
**Achievements**
None
` + "```"

	got := ParseLLMOutput(text)

	require.NotNil(t, got.Name)
	assert.Equal(t, "Jane Smith", *got.Name)
	assert.Equal(t, types.NotProvided, *got.Email)
	assert.Equal(t, "+1 555 0100", *got.Phone)
	assert.Equal(t, types.NotProvided, *got.Location)
	assert.Equal(t, "linkedin.com/in/janesmith", *got.LinkedIn)
	assert.Equal(t, types.NotProvided, *got.GitHub)
	assert.Equal(t, 7, *got.ExperienceYears)

	assert.Equal(t, []types.EducationEntry{
		{Degree: "Master of Science", Institution: "MIT", Years: "2020-2022"},
	}, got.Education)
	assert.Equal(t, []types.ExperienceEntry{
		{Role: "Software Engineer", Company: "Google", Duration: "2018-2020", Description: "Built search infrastructure."},
	}, got.Experience)
	assert.Equal(t, []string{"Go", "Kubernetes"}, got.TechnicalSkills)
	assert.Equal(t, []string{"Leadership", "Communication"}, got.SoftSkills)
	assert.Empty(t, got.Certifications)
	assert.ElementsMatch(t, []string{"English (Native)", "Tamil (Fluent)"}, got.Languages)
	assert.Equal(t, []types.ProjectEntry{
		{Name: "Resume Parser", Description: "Extracts candidates", Technologies: []string{"Go", "PostgreSQL"}},
	}, got.Projects)
	assert.Empty(t, got.Achievements)
}

func TestParseLLMOutput_ExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"plain number", "5", 5},
		{"first run of digits", "8 years, 3 months", 8},
		{"no digits", "not specified", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLLMOutput("**Experience Years**\n" + tt.body)
			require.NotNil(t, got.ExperienceYears)
			assert.Equal(t, tt.want, *got.ExperienceYears)
		})
	}
}

func TestParseLLMOutput_RepeatedListSectionsAppend(t *testing.T) {
	text := `**Experience**
Engineer at Initech (2015-2017)
**Experience**
Architect at Globex (2017-2020)`

	got := ParseLLMOutput(text)

	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Initech", got.Experience[0].Company)
	assert.Equal(t, "Globex", got.Experience[1].Company)
}

func TestParseLLMOutput_LinesBeforeFirstHeaderIgnored(t *testing.T) {
	got := ParseLLMOutput("Here is the extraction:\n**Name**\nJane Smith")

	require.NotNil(t, got.Name)
	assert.Equal(t, "Jane Smith", *got.Name)
}

func TestSectionKey(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Name", SectionName},
		{"Experience Years", SectionExperienceYears},
		{"Technical   Skills", SectionTechnicalSkills},
		{"LinkedIn", SectionLinkedIn},
		{"Education:", SectionEducation},
		{"Hobbies", "hobbies"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, sectionKey(tt.header))
		})
	}
}

func TestSectionHeader(t *testing.T) {
	header, ok := sectionHeader("**Soft Skills**")
	assert.True(t, ok)
	assert.Equal(t, "Soft Skills", header)

	_, ok = sectionHeader("**Name**: Jane")
	assert.False(t, ok)

	_, ok = sectionHeader("**")
	assert.False(t, ok)
}

func TestCleanBasicField(t *testing.T) {
	assert.Equal(t, types.NotProvided, cleanBasicField(""))
	assert.Equal(t, types.NotProvided, cleanBasicField("  Not Specified "))
	assert.Equal(t, types.NotProvided, cleanBasicField("n/a"))
	assert.Equal(t, "Berlin, Germany", cleanBasicField(" Berlin, Germany "))
}

func TestParseLLMOutput_NoneListsAreEmpty(t *testing.T) {
	got := ParseLLMOutput("**Soft Skills**\nNone\n**Certifications**\nNone listed")

	assert.NotNil(t, got.SoftSkills)
	assert.Empty(t, got.SoftSkills)
	assert.Empty(t, got.Certifications)
}
