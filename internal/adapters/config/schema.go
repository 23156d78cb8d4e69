package config

// Setupfile represents the structure of the setup.yaml manifest file.
type Setupfile struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Description  string   `yaml:"description"`
	Author       string   `yaml:"author"`
	AuthorEmail  string   `yaml:"author_email"`
	Requirements string   `yaml:"requirements"`
	Scripts      []string `yaml:"scripts"`
	Policy       string   `yaml:"requirements_policy"`
}
