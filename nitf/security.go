package nitf

// SecurityMetadata is the security group shared by the file header and every
// segment subheader. Fields that only exist in one NITF version are left
// empty by the decoder for the other.
type SecurityMetadata struct {
	Classification              SecurityClassification `json:"classification" yaml:"classification"`
	ClassificationSystem        string                 `json:"classificationSystem" yaml:"classificationSystem"`
	Codewords                   string                 `json:"codewords" yaml:"codewords"`
	ControlAndHandling          string                 `json:"controlAndHandling" yaml:"controlAndHandling"`
	ReleaseInstructions         string                 `json:"releaseInstructions" yaml:"releaseInstructions"`
	DeclassificationType        string                 `json:"declassificationType" yaml:"declassificationType"`
	DeclassificationDate        string                 `json:"declassificationDate" yaml:"declassificationDate"`
	DeclassificationExemption   string                 `json:"declassificationExemption" yaml:"declassificationExemption"`
	Downgrade                   string                 `json:"downgrade" yaml:"downgrade"`
	DowngradeDate               string                 `json:"downgradeDate" yaml:"downgradeDate"`
	DowngradeEvent              string                 `json:"downgradeEvent" yaml:"downgradeEvent"`
	ClassificationText          string                 `json:"classificationText" yaml:"classificationText"`
	ClassificationAuthorityType string                 `json:"classificationAuthorityType" yaml:"classificationAuthorityType"`
	ClassificationAuthority     string                 `json:"classificationAuthority" yaml:"classificationAuthority"`
	ClassificationReason        string                 `json:"classificationReason" yaml:"classificationReason"`
	SecuritySourceDate          string                 `json:"securitySourceDate" yaml:"securitySourceDate"`
	SecurityControlNumber       string                 `json:"securityControlNumber" yaml:"securityControlNumber"`
}

// FileSecurityMetadata extends SecurityMetadata with the header-only copy fields
type FileSecurityMetadata struct {
	SecurityMetadata   `yaml:",inline"`
	FileCopyNumber     string `json:"fileCopyNumber" yaml:"fileCopyNumber"`
	FileNumberOfCopies string `json:"fileNumberOfCopies" yaml:"fileNumberOfCopies"`
}
