package types

// ReporterConfig is the explicit, defaulted configuration record for a run.
// It is supplied at construction and immutable for the lifetime of the run.
// Notification targets are carried for downstream collaborators; the core
// itself never uses them.
type ReporterConfig struct {
	OutputDir   string `json:"outputDir" yaml:"outputDir"`
	ReportTitle string `json:"reportTitle" yaml:"reportTitle"`
	CompanyName string `json:"companyName" yaml:"companyName"`
	ProjectName string `json:"projectName" yaml:"projectName"`
	Logo        string `json:"logo,omitempty" yaml:"logo"`

	ShowPassedTests    bool `json:"showPassedTests" yaml:"showPassedTests"`
	ShowSkippedTests   bool `json:"showSkippedTests" yaml:"showSkippedTests"`
	IncludeScreenshots bool `json:"includeScreenshots" yaml:"includeScreenshots"`
	IncludeVideos      bool `json:"includeVideos" yaml:"includeVideos"`
	IncludeTraces      bool `json:"includeTraces" yaml:"includeTraces"`

	Theme               string `json:"theme" yaml:"theme"`
	PrimaryColor        string `json:"primaryColor" yaml:"primaryColor"`
	ShowEnvironmentInfo bool   `json:"showEnvironmentInfo" yaml:"showEnvironmentInfo"`

	CustomMetadata map[string]string `json:"customMetadata,omitempty" yaml:"customMetadata"`
	TestCategories []string          `json:"testCategories" yaml:"testCategories"`

	SlackWebhook    string   `json:"slackWebhook,omitempty" yaml:"slackWebhook"`
	EmailRecipients []string `json:"emailRecipients,omitempty" yaml:"emailRecipients"`

	Language string `json:"language" yaml:"language"`
}
