package types

// RepositoryEntry is one pacman repository section: a bracketed name
// and a server URL template ($arch is substituted by pacman itself).
type RepositoryEntry struct {
	Name           string
	ServerTemplate string
}

// KeyTrustRecord describes how far key trust got during a run. The
// keyserver list keeps its attempt order; ImportedFrom names the first
// server that answered.
type KeyTrustRecord struct {
	KeyID         string
	Keyservers    []string
	Imported      bool
	ImportedFrom  string
	LocallySigned bool
}
