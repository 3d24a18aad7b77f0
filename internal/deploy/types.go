package deploy

// Config is the dependency bag passed to New().
type Config struct {
	// Dir holds the files to ship.
	Dir string
	// Files are the names, relative to Dir, that make up a deployment.
	Files []string
	// PackageName is the archive file name, written inside Dir unless absolute.
	PackageName string
}

// Package describes a written deployment archive.
type Package struct {
	Path  string
	Files []string
	Size  int64
}

// HostingOption is one way to publish the front-end.
type HostingOption struct {
	Name  string
	URL   string
	Steps []string
}
