package types

// Scores holds the heuristic fit scores for one candidate (0-100 each)
type Scores struct {
	Technical     int `json:"technical"`
	Experience    int `json:"experience"`
	Education     int `json:"education"`
	Communication int `json:"communication"`
	SkillMatch    int `json:"skill_match"`
	Overall       int `json:"overall"`
}

// CandidateAnalysis is the screening result for one candidate
type CandidateAnalysis struct {
	Rank           int        `json:"rank"`
	Source         string     `json:"source"`
	Candidate      *Candidate `json:"candidate"`
	Scores         Scores     `json:"scores"`
	Strengths      []string   `json:"strengths"`
	RedFlags       []string   `json:"red_flags"`
	Recommendation string     `json:"recommendation"`
	OverallFit     string     `json:"overall_fit"`
	ParseError     string     `json:"parse_error,omitempty"`
}

// Shortlist is the ranked output of a screening run
type Shortlist struct {
	JobTitle   string              `json:"job_title"`
	Screened   int                 `json:"screened"`
	Candidates []CandidateAnalysis `json:"candidates"`
}
