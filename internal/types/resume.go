package types

// Sentinel values used when a required field could not be detected.
const (
	UnknownName     = "Unknown Name"
	UnknownCompany  = "Unknown Company"
	UnknownPosition = "Unknown Position"
)

// WorkExperience is a single work-history entry extracted from a resume.
type WorkExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// ResumeRecord is the structured output of the extraction pipeline.
// Every field is always present; undetected fields hold their empty or
// sentinel value, never a partial record.
type ResumeRecord struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	Skills          []string         `json:"skills"`
	Experience      []WorkExperience `json:"experience"`
	Education       string           `json:"education"`
	Location        string           `json:"location"`
	LinkedInURL     string           `json:"linkedin_url,omitempty"`
	GitHubURL       string           `json:"github_url,omitempty"`
	YearsExperience *int             `json:"years_experience,omitempty"`
}
