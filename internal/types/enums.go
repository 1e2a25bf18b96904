package types

type OSFamily string

const (
	OSFamilyDebian OSFamily = "debian"
	OSFamilyArch   OSFamily = "arch"
	OSFamilyAlpine OSFamily = "alpine"
	OSFamilyOther  OSFamily = "other"
)

type InstallMode string

const (
	InstallModeSkip          InstallMode = "skip"
	InstallModeManualConfig  InstallMode = "manual-config"
	InstallModeGuidedInstall InstallMode = "guided-install"
)

type AppendOutcome string

const (
	AppendOutcomeAppended       AppendOutcome = "appended"
	AppendOutcomeAlreadyPresent AppendOutcome = "already-present"
)

type KeyringOutcome string

const (
	KeyringOutcomeInstalled KeyringOutcome = "installed"
	KeyringOutcomePopulated KeyringOutcome = "populated"
	KeyringOutcomeFailed    KeyringOutcome = "failed"
)

type ProfileOutcome string

const (
	ProfileOutcomeWritten       ProfileOutcome = "written"
	ProfileOutcomeAlreadyExists ProfileOutcome = "already-exists"
	ProfileOutcomeDeclined      ProfileOutcome = "declined"
	ProfileOutcomeNoPermission  ProfileOutcome = "no-permission"
)

type SyncOutcome string

const (
	SyncOutcomeSkipped         SyncOutcome = "skipped"
	SyncOutcomeCurrentWorkTree SyncOutcome = "current-worktree"
	SyncOutcomeCloned          SyncOutcome = "cloned"
	SyncOutcomePulled          SyncOutcome = "pulled"
	SyncOutcomePullFailed      SyncOutcome = "pull-failed"
)

type DeployOutcome string

const (
	DeployOutcomeDeployed DeployOutcome = "deployed"
	DeployOutcomeNoSource DeployOutcome = "no-source"
	DeployOutcomeSkipped  DeployOutcome = "skipped"
)
