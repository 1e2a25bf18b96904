package app

import "dkp-bootstrap/internal/types"

// BootstrapRequest is the service-facing name for the install plan.
type BootstrapRequest = types.InstallPlan

type BootstrapResult struct {
	Host    types.HostEnvironment
	Mode    types.InstallMode
	Trust   types.KeyTrustRecord
	Keyring types.KeyringOutcome
	Repos   []RepoChange
	Profile types.ProfileOutcome
	Sync    SyncResult
	Deploy  DeployResult
}

type RepoChange struct {
	Name    string
	Outcome types.AppendOutcome
}

type SyncResult struct {
	Outcome  types.SyncOutcome
	Checkout types.RepoCheckout
}

type DeployResult struct {
	Outcome    types.DeployOutcome
	Deployment types.AssetDeployment
	BuildRan   bool
}
