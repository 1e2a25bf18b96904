package types

// RepoCheckout locates the project working copy a run ended up with.
// IsCurrentWorkTree is set when the operator was already inside the
// project, in which case no network operation was needed.
type RepoCheckout struct {
	Destination       string
	RemoteURL         string
	AlreadyExists     bool
	IsCurrentWorkTree bool
}

// AssetDeployment names the mirrored subtree. Mirroring is a full
// replace of DestDir, never a merge.
type AssetDeployment struct {
	SourceDir    string
	DestDir      string
	SourceExists bool
}

// BuildDescriptor is the subset of lovebrew.toml this tool reads. The
// bundler owns the full format; only identity and targets matter here.
type BuildDescriptor struct {
	Metadata DescriptorMetadata `toml:"metadata"`
	Build    DescriptorBuild    `toml:"build"`
}

type DescriptorMetadata struct {
	Title   string `toml:"title"`
	Author  string `toml:"author"`
	Version string `toml:"version"`
}

type DescriptorBuild struct {
	Targets []string `toml:"targets"`
	Source  string   `toml:"source"`
}
