package types

// InstallPlan is the operator's resolved intent for a single run,
// assembled from flags, environment, and config before any side effect
// happens.
type InstallPlan struct {
	CloneRepo       bool
	LovebrewPath    string
	NoInstall       bool
	UseSystemPacman bool
	DevkitproPath   string
	PackageSetPath  string
	NonInteractive  bool
}

// PackageSet names the prerequisite tools and the toolchain package
// groups a run installs. An override file may replace either list; an
// omitted list keeps the built-in one.
type PackageSet struct {
	Prerequisites []string `yaml:"prerequisites,omitempty"`
	Packages      []string `yaml:"packages,omitempty"`
}
