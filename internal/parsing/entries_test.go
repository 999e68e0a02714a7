package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestParseEducation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.EducationEntry
	}{
		{
			name: "degree institution years gpa",
			line: "- B.Sc Computer Science, Stanford University (2015-2019) GPA: 3.8",
			want: types.EducationEntry{Degree: "B.Sc Computer Science", Institution: "Stanford University", Years: "2015-2019 (GPA: 3.8)"},
		},
		{
			name: "degree institution years",
			line: "B.Tech, IIT Madras (2015-2019)",
			want: types.EducationEntry{Degree: "B.Tech", Institution: "IIT Madras", Years: "2015-2019"},
		},
		{
			name: "institution colon degree",
			line: "MIT: Master of Science (2020-2022)",
			want: types.EducationEntry{Degree: "Master of Science", Institution: "MIT", Years: "2020-2022"},
		},
		{
			name: "degree from institution",
			line: "Bachelor of Arts from Yale (2010-2014)",
			want: types.EducationEntry{Degree: "Bachelor of Arts", Institution: "Yale", Years: "2010-2014"},
		},
		{
			name: "pipe separated",
			line: "BSc | Oxford | 2012",
			want: types.EducationEntry{Degree: "BSc", Institution: "Oxford", Years: "2012"},
		},
		{
			name: "loose comma form",
			line: "PhD, ETH Zurich",
			want: types.EducationEntry{Degree: "PhD", Institution: "ETH Zurich", Years: "Not specified"},
		},
		{
			name: "keyword fallback",
			line: "Diploma in Design (Parsons School) 2011",
			want: types.EducationEntry{Degree: "Diploma in Design", Institution: "Parsons School", Years: "2011"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newParsedCandidate()
			parseEducation([]string{tt.line}, c)
			assert.Equal(t, []types.EducationEntry{tt.want}, c.Education)
		})
	}
}

func TestParseEducation_SkipsUnusableLines(t *testing.T) {
	c := newParsedCandidate()
	parseEducation([]string{"Not provided", "None listed", "Self taught", "BA"}, c)
	assert.Empty(t, c.Education)
}

func TestParseExperience(t *testing.T) {
	t.Run("company colon title swaps fields", func(t *testing.T) {
		c := newParsedCandidate()
		parseExperience([]string{"Google: Software Engineer (2018-2020)"}, c)
		assert.Equal(t, []types.ExperienceEntry{
			{Role: "Software Engineer", Company: "Google", Duration: "2018-2020"},
		}, c.Experience)
	})

	t.Run("pipe separated", func(t *testing.T) {
		c := newParsedCandidate()
		parseExperience([]string{"Data Analyst | Initech | 2016-2018"}, c)
		assert.Equal(t, []types.ExperienceEntry{
			{Role: "Data Analyst", Company: "Initech", Duration: "2016-2018"},
		}, c.Experience)
	})

	t.Run("at requires surrounding spaces", func(t *testing.T) {
		c := newParsedCandidate()
		parseExperience([]string{"Data Analyst at Hooli (2019-2021)"}, c)
		assert.Equal(t, "Data Analyst", c.Experience[0].Role)
		assert.Equal(t, "Hooli", c.Experience[0].Company)
	})

	t.Run("dash lines without a match are dropped", func(t *testing.T) {
		c := newParsedCandidate()
		parseExperience([]string{
			"Senior Engineer at Acme Corp (2019-2022)",
			"- Mentored interns",
			"Owned the billing service.",
		}, c)
		assert.Len(t, c.Experience, 1)
		assert.Equal(t, "Owned the billing service.", c.Experience[0].Description)
	})

	t.Run("continuation without an entry is dropped", func(t *testing.T) {
		c := newParsedCandidate()
		parseExperience([]string{"Worked on many things."}, c)
		assert.Empty(t, c.Experience)
	})

	t.Run("multiple continuation lines are space joined", func(t *testing.T) {
		c := newParsedCandidate()
		parseExperience([]string{
			"Engineer at Initech (2015-2017)",
			"Wrote reports.",
			"Fixed printers.",
		}, c)
		assert.Equal(t, "Wrote reports. Fixed printers.", c.Experience[0].Description)
	})
}

func TestParseProjects(t *testing.T) {
	c := newParsedCandidate()
	parseProjects([]string{
		"- Resume Parser: Extracts candidates (Go, PostgreSQL)",
		"Chat App - Realtime messaging (React, Node)",
		"Portfolio: Personal website",
		"• Compiler toy",
		"A line with no shape",
		"n/a",
	}, c)

	assert.Equal(t, []types.ProjectEntry{
		{Name: "Resume Parser", Description: "Extracts candidates", Technologies: []string{"Go", "PostgreSQL"}},
		{Name: "Chat App", Description: "Realtime messaging", Technologies: []string{"React", "Node"}},
		{Name: "Portfolio", Description: "Personal website", Technologies: []string{}},
		{Name: "Compiler toy", Description: "Compiler toy", Technologies: []string{}},
	}, c.Projects)
}

func TestParseAchievements(t *testing.T) {
	c := newParsedCandidate()
	parseAchievements([]string{"- Won hackathon", "• Published paper", "None", "Speaker at GopherCon"}, c)
	assert.Equal(t, []string{"Won hackathon", "Published paper", "Speaker at GopherCon"}, c.Achievements)
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"mixed separators", []string{"Python, Go; Rust | C & C++"}, []string{"Python", "Go", "Rust", "C", "C++"}},
		{"wrapped lines joined with spaces", []string{"Machine", "Learning, Statistics"}, []string{"Machine Learning", "Statistics"}},
		{"bulleted lines", []string{"- Leadership", "- Communication"}, []string{"Leadership", "Communication"}},
		{"placeholders dropped", []string{"AWS, Not provided, N/A, GCP"}, []string{"AWS", "GCP"}},
		{"all placeholders", []string{"Not specified"}, []string{}},
		{"none sentinels dropped", []string{"None"}, []string{}},
		{"none listed dropped", []string{"Go, none listed, N/A"}, []string{"Go"}},
		{"bullet with wrapped continuation", []string{"- Distributed", "Systems", "- Kubernetes"}, []string{"Distributed Systems", "Kubernetes"}},
		{"plain line before bullets", []string{"Go, Python", "- Docker", "- Terraform"}, []string{"Go", "Python", "Docker", "Terraform"}},
		{"wrapped line in mixed block", []string{"Machine", "Learning", "- SQL"}, []string{"Machine Learning", "SQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseList(tt.lines))
		})
	}
}

func TestIsEmptyOrNotProvided(t *testing.T) {
	for _, s := range []string{"", "  ", "Not Provided", "NOT SPECIFIED", "n/a", "None", "none listed"} {
		assert.True(t, isEmptyOrNotProvided(s), s)
	}
	assert.False(t, isEmptyOrNotProvided("Nonesuch Ltd"))
}
