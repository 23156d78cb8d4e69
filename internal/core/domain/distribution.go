package domain

const (
	// DefaultName is the distribution name.
	DefaultName = "when_can_i_run"
	// DefaultVersion is the distribution version.
	DefaultVersion = "0.0.1"
	// DefaultDescription is the distribution summary.
	DefaultDescription = "Script which tells you at what times you can run."
	// DefaultAuthor is the distribution author.
	DefaultAuthor = "Richard Delaney"
	// DefaultAuthorEmail is the distribution author's email address.
	DefaultAuthorEmail = "richdel1991@gmail.com"
	// DefaultScript is the executable registered as the entry point.
	DefaultScript = "bin/when_can_i_run"
)

// Manifest is the static packaging metadata of a distribution.
type Manifest struct {
	Name             string
	Version          string
	Description      string
	Author           string
	AuthorEmail      string
	RequirementsFile string
	Scripts          []string
	Policy           RequirementsPolicy
}

// DefaultManifest returns the manifest used when no manifest file is present.
func DefaultManifest() Manifest {
	return Manifest{
		Name:             DefaultName,
		Version:          DefaultVersion,
		Description:      DefaultDescription,
		Author:           DefaultAuthor,
		AuthorEmail:      DefaultAuthorEmail,
		RequirementsFile: DefaultRequirementsFile,
		Scripts:          []string{DefaultScript},
		Policy:           PolicySoft,
	}
}

// Distribution is a manifest resolved against its requirements file.
type Distribution struct {
	Name            string       `json:"name" yaml:"name"`
	Version         string       `json:"version" yaml:"version"`
	Description     string       `json:"description" yaml:"description"`
	Author          string       `json:"author" yaml:"author"`
	AuthorEmail     string       `json:"author_email" yaml:"author_email"`
	InstallRequires Requirements `json:"install_requires" yaml:"install_requires"`
	Scripts         []string     `json:"scripts" yaml:"scripts"`
	Fingerprint     string       `json:"fingerprint" yaml:"fingerprint"`
}

// NewDistribution combines a manifest with its loaded requirements.
func NewDistribution(m Manifest, reqs Requirements) *Distribution {
	if reqs == nil {
		reqs = Requirements{}
	}
	scripts := make([]string, len(m.Scripts))
	copy(scripts, m.Scripts)

	return &Distribution{
		Name:            m.Name,
		Version:         m.Version,
		Description:     m.Description,
		Author:          m.Author,
		AuthorEmail:     m.AuthorEmail,
		InstallRequires: reqs,
		Scripts:         scripts,
	}
}
