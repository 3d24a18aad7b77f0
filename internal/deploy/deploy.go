package deploy

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gemini-chatbot/pkg/log"
)

const DefaultPackageName = "chatbot_deployment.zip"

// Deployer checks and packages the static front-end.
type Deployer struct {
	l   log.Logger
	cfg Config
}

func New(l log.Logger, cfg Config) *Deployer {
	if cfg.PackageName == "" {
		cfg.PackageName = DefaultPackageName
	}
	return &Deployer{l: l, cfg: cfg}
}

// MissingFiles lists the configured files absent from Dir, in config order.
func (d *Deployer) MissingFiles() []string {
	var missing []string
	for _, name := range d.cfg.Files {
		if _, err := os.Stat(filepath.Join(d.cfg.Dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// CheckRequirements fails with ErrMissingFiles when any configured file is absent.
func (d *Deployer) CheckRequirements() error {
	if missing := d.MissingFiles(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFiles, strings.Join(missing, ", "))
	}
	return nil
}

// PackagePath is where CreatePackage writes the archive.
func (d *Deployer) PackagePath() string {
	if filepath.IsAbs(d.cfg.PackageName) {
		return d.cfg.PackageName
	}
	return filepath.Join(d.cfg.Dir, d.cfg.PackageName)
}

// CreatePackage zips every configured file that exists. Missing files are
// skipped; an archive with nothing in it is an error.
func (d *Deployer) CreatePackage(ctx context.Context) (Package, error) {
	var present []string
	for _, name := range d.cfg.Files {
		if _, err := os.Stat(filepath.Join(d.cfg.Dir, name)); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return Package{}, ErrNothingToPack
	}

	path := d.PackagePath()
	f, err := os.Create(path)
	if err != nil {
		return Package{}, fmt.Errorf("create %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	for _, name := range present {
		if err := addFile(zw, filepath.Join(d.cfg.Dir, name), name); err != nil {
			zw.Close()
			f.Close()
			os.Remove(path)
			return Package{}, err
		}
		d.l.Debugf(ctx, "internal.deploy.CreatePackage: added %s", name)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return Package{}, fmt.Errorf("finalize %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Package{}, fmt.Errorf("close %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Package{}, err
	}

	d.l.Infof(ctx, "internal.deploy.CreatePackage: wrote %s (%d files)", path, len(present))
	return Package{Path: path, Files: present, Size: info.Size()}, nil
}

func addFile(zw *zip.Writer, src, name string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(name)
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	return nil
}
