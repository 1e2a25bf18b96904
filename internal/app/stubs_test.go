package app

import (
	"context"
	"errors"
	"time"

	"dkp-bootstrap/internal/types"
)

// Recording fakes shared by the service tests. Each one notes what was
// called so flows can assert what ran and, just as important, what
// did not.

type fakeHostProbe struct {
	host types.HostEnvironment
}

func (f fakeHostProbe) Detect(_ context.Context) types.HostEnvironment { return f.host }

type fakeKeyTrust struct {
	failReceiveOn map[string]bool
	signErr       error
	received      []string
	signed        []string
}

func (f *fakeKeyTrust) ReceiveKey(_ context.Context, _ string, keyserver string) error {
	f.received = append(f.received, keyserver)
	if f.failReceiveOn[keyserver] {
		return errors.New("keyserver unreachable")
	}
	return nil
}

func (f *fakeKeyTrust) SignKey(_ context.Context, keyID string) error {
	f.signed = append(f.signed, keyID)
	return f.signErr
}

type fakeKeyring struct {
	installErr  error
	populateErr error
	installed   []string
	populated   []string
}

func (f *fakeKeyring) InstallRemote(_ context.Context, packageURL string) error {
	f.installed = append(f.installed, packageURL)
	return f.installErr
}

func (f *fakeKeyring) PopulateLocal(_ context.Context, keyringName string) error {
	f.populated = append(f.populated, keyringName)
	return f.populateErr
}

type fakePacmanConf struct {
	content   string
	readErr   error
	appendErr error
	appended  []string
}

func (f *fakePacmanConf) Path() string { return "/etc/pacman.conf" }

func (f *fakePacmanConf) Read() (string, error) { return f.content, f.readErr }

func (f *fakePacmanConf) Append(_ context.Context, block string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, block)
	f.content += block
	return nil
}

type fakePackageManager struct {
	aptUpdateErr    error
	aptInstallErr   error
	pacmanErr       error
	upgradeErr      error
	toolchainErr    error
	tool            string
	aptUpdates      int
	aptInstalled    [][]string
	pacmanInstalled [][]string
	upgrades        int
	toolchainRuns   [][]string
}

func (f *fakePackageManager) UpdateAptIndex(_ context.Context) error {
	f.aptUpdates++
	return f.aptUpdateErr
}

func (f *fakePackageManager) InstallWithApt(_ context.Context, packages []string) error {
	f.aptInstalled = append(f.aptInstalled, packages)
	return f.aptInstallErr
}

func (f *fakePackageManager) InstallWithPacman(_ context.Context, packages []string) error {
	f.pacmanInstalled = append(f.pacmanInstalled, packages)
	return f.pacmanErr
}

func (f *fakePackageManager) UpgradeSystem(_ context.Context) error {
	f.upgrades++
	return f.upgradeErr
}

func (f *fakePackageManager) InstallToolchain(_ context.Context, packages []string) error {
	f.toolchainRuns = append(f.toolchainRuns, packages)
	return f.toolchainErr
}

func (f *fakePackageManager) ToolchainTool() string {
	if f.tool == "" {
		return "pacman"
	}
	return f.tool
}

type fakeDownloader struct {
	err     error
	fetched []string
	dests   []string
}

func (f *fakeDownloader) Fetch(_ context.Context, url string, dest string) error {
	f.fetched = append(f.fetched, url)
	f.dests = append(f.dests, dest)
	return f.err
}

type fakeBootstrapScript struct {
	err  error
	runs []string
}

func (f *fakeBootstrapScript) Run(_ context.Context, path string) error {
	f.runs = append(f.runs, path)
	return f.err
}

type fakeGit struct {
	workTreeRoot string
	remoteURL    string
	remoteErr    error
	repoExists   bool
	cloneErr     error
	pullErr      error
	cloned       [][2]string
	pulled       []string
}

func (f *fakeGit) Clone(_ context.Context, remote string, dest string) error {
	if f.cloneErr != nil {
		return f.cloneErr
	}
	f.cloned = append(f.cloned, [2]string{remote, dest})
	return nil
}

func (f *fakeGit) PullFFOnly(_ context.Context, dir string) error {
	if f.pullErr != nil {
		return f.pullErr
	}
	f.pulled = append(f.pulled, dir)
	return nil
}

func (f *fakeGit) IsRepo(_ string) bool { return f.repoExists }

func (f *fakeGit) WorkTreeRoot(_ context.Context, _ string) (string, bool) {
	return f.workTreeRoot, f.workTreeRoot != ""
}

func (f *fakeGit) RemoteURL(_ context.Context, _ string) (string, error) {
	return f.remoteURL, f.remoteErr
}

type fakeProfile struct {
	existing map[string]bool
	writeErr error
	written  map[string]string
}

func (f *fakeProfile) Exists(path string) bool { return f.existing[path] }

func (f *fakeProfile) Write(_ context.Context, path string, content string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if f.written == nil {
		f.written = map[string]string{}
	}
	f.written[path] = content
	return nil
}

type fakeAssets struct {
	sourceExists   bool
	placeholderErr error
	mirrorErr      error
	placeholders   []string
	mirrored       [][2]string
}

func (f *fakeAssets) SourceExists(_ string) bool { return f.sourceExists }

func (f *fakeAssets) CreatePlaceholder(dir string) error {
	if f.placeholderErr != nil {
		return f.placeholderErr
	}
	f.placeholders = append(f.placeholders, dir)
	f.sourceExists = true
	return nil
}

func (f *fakeAssets) Mirror(_ context.Context, src string, dest string) error {
	if f.mirrorErr != nil {
		return f.mirrorErr
	}
	f.mirrored = append(f.mirrored, [2]string{src, dest})
	return nil
}

type fakeDescriptor struct {
	descriptor types.BuildDescriptor
	found      bool
	loadErr    error
	buildErr   error
	builds     []string
}

func (f *fakeDescriptor) Load(_ string) (types.BuildDescriptor, bool, error) {
	return f.descriptor, f.found, f.loadErr
}

func (f *fakeDescriptor) RunBuild(_ context.Context, dir string) error {
	f.builds = append(f.builds, dir)
	return f.buildErr
}

type fakePackageSet struct {
	set types.PackageSet
	err error
}

func (f fakePackageSet) Load(_ string) (types.PackageSet, error) { return f.set, f.err }

type fakePrompt struct {
	confirmAnswer    bool
	inputAnswer      string
	confirmQuestions []string
	inputQuestions   []string
}

func (f *fakePrompt) Confirm(question string, _ bool) bool {
	f.confirmQuestions = append(f.confirmQuestions, question)
	return f.confirmAnswer
}

func (f *fakePrompt) Input(question string) string {
	f.inputQuestions = append(f.inputQuestions, question)
	return f.inputAnswer
}

type fakeNotifier struct {
	notices  []string
	panels   []string
	suggests []string
}

func (f *fakeNotifier) Notice(msg string) { f.notices = append(f.notices, msg) }

func (f *fakeNotifier) Panel(title string, _ []string) { f.panels = append(f.panels, title) }

func (f *fakeNotifier) Suggest(_ string, command string) {
	f.suggests = append(f.suggests, command)
}

// serviceFakes bundles every fake so full Run tests can assert across
// the whole pipeline.
type serviceFakes struct {
	keyTrust   *fakeKeyTrust
	keyring    *fakeKeyring
	pacmanConf *fakePacmanConf
	packages   *fakePackageManager
	downloader *fakeDownloader
	bootstrap  *fakeBootstrapScript
	git        *fakeGit
	profile    *fakeProfile
	assets     *fakeAssets
	descriptor *fakeDescriptor
	prompt     *fakePrompt
	notifier   *fakeNotifier
}

func newTestService(host types.HostEnvironment) (Service, *serviceFakes) {
	fakes := &serviceFakes{
		keyTrust:   &fakeKeyTrust{},
		keyring:    &fakeKeyring{},
		pacmanConf: &fakePacmanConf{},
		packages:   &fakePackageManager{},
		downloader: &fakeDownloader{},
		bootstrap:  &fakeBootstrapScript{},
		git:        &fakeGit{},
		profile:    &fakeProfile{},
		assets:     &fakeAssets{sourceExists: true},
		descriptor: &fakeDescriptor{},
		prompt:     &fakePrompt{confirmAnswer: true},
		notifier:   &fakeNotifier{},
	}
	svc := Service{
		HostProbe:  fakeHostProbe{host: host},
		KeyTrust:   fakes.keyTrust,
		Keyring:    fakes.keyring,
		PacmanConf: fakes.pacmanConf,
		Packages:   fakes.packages,
		Downloader: fakes.downloader,
		Bootstrap:  fakes.bootstrap,
		Git:        fakes.git,
		Profile:    fakes.profile,
		Assets:     fakes.assets,
		Descriptor: fakes.descriptor,
		PackageSet: fakePackageSet{},
		Prompt:     fakes.prompt,
		Notifier:   fakes.notifier,
		Clock:      time.Now,
	}
	return svc, fakes
}
