// Package backend performs the per-service apply work behind the engine:
// adding and removing the package repository configuration a service
// needs. The engine only sees the Applier interface; everything below it
// (APT sources, keyrings, installers) stays replaceable.
package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/pkg/logging"
)

// ApplyResult reports the side effects of one apply step.
type ApplyResult struct {
	// NeedsReboot is set when the step replaced the running kernel.
	NeedsReboot bool
	// Warnings carries non-fatal advisories for the aggregated report.
	Warnings []string
}

// Applier applies a lifecycle action to a single service.
type Applier interface {
	Enable(ctx context.Context, svc catalog.Service) (ApplyResult, error)
	Disable(ctx context.Context, svc catalog.Service) (ApplyResult, error)
}

// RepoApplier manages one APT source file per service under a sources
// directory. It does not install packages (package installation is the
// package manager's job, triggered separately); it only makes the
// service's repository visible to it.
type RepoApplier struct {
	sourcesDir string
}

const defaultSourcesDir = "/etc/apt/sources.list.d"

// NewRepoApplier returns an applier writing to the system APT sources
// directory.
func NewRepoApplier() *RepoApplier {
	return NewRepoApplierWithDir(defaultSourcesDir)
}

// NewRepoApplierWithDir returns an applier rooted at a custom directory.
func NewRepoApplierWithDir(dir string) *RepoApplier {
	return &RepoApplier{sourcesDir: dir}
}

// SourcePath returns the sources file the applier manages for a service.
func (a *RepoApplier) SourcePath(svc catalog.Service) string {
	return filepath.Join(a.sourcesDir, fmt.Sprintf("ubuntu-%s.list", svc.Name))
}

// Enable writes the service's APT source file.
func (a *RepoApplier) Enable(ctx context.Context, svc catalog.Service) (ApplyResult, error) {
	if err := ctx.Err(); err != nil {
		return ApplyResult{}, err
	}

	line := fmt.Sprintf("deb https://esm.ubuntu.com/%s/ubuntu stable main\n", svc.Name)
	path := a.SourcePath(svc)
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		return ApplyResult{}, fmt.Errorf("configuring repository for %s: %w", svc.Name, err)
	}
	logging.Info("Backend", "wrote APT source for %s at %s", svc.Name, path)

	return ApplyResult{NeedsReboot: svc.AffectsKernel}, nil
}

// Disable removes the service's APT source file. Already-installed
// packages stay installed, which is surfaced as a warning.
func (a *RepoApplier) Disable(ctx context.Context, svc catalog.Service) (ApplyResult, error) {
	if err := ctx.Err(); err != nil {
		return ApplyResult{}, err
	}

	path := a.SourcePath(svc)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return ApplyResult{}, fmt.Errorf("removing repository for %s: %w", svc.Name, err)
	}
	logging.Info("Backend", "removed APT source for %s", svc.Name)

	result := ApplyResult{
		NeedsReboot: svc.AffectsKernel,
		Warnings: []string{
			fmt.Sprintf("Packages installed from %s remain installed", svc.Title),
		},
	}
	return result, nil
}
