// Package copybook resolves copybook references to files by searching the
// configured folder kinds in a fixed priority order.
package copybook

import (
	"io"
	"log/slog"
	"path/filepath"
)

// Settings exposes the configured copybook locations for one document.
type Settings interface {
	LocalPaths(documentURI, dialect string) []string
	DsnPaths(documentURI, dialect string) []string
	UssPaths(documentURI, dialect string) []string
	ProfileName() string
	CopybookExtensions(documentURI string) []string
}

// SearchFunc looks for name in folders, trying each extension in turn, and
// returns the first matching path.
type SearchFunc func(name string, folders, extensions []string, storagePath string) (string, bool)

// Request carries the inputs of one lookup.
type Request struct {
	DocumentURI  string
	CopybookName string
	Dialect      string
	StoragePath  string
}

// FolderKind is one category of copybook folders together with the way its
// folders and allowed extensions are derived from the settings.
type FolderKind struct {
	Name       string
	folders    func(Settings, Request) []string
	extensions func(Settings, Request) []string
}

// exactName matches the copybook name without appending an extension.
var exactName = []string{""}

// FolderKinds は検索順に並んだフォルダ種別です。順序は固定です。
var FolderKinds = []FolderKind{
	{
		Name: "local",
		folders: func(s Settings, r Request) []string {
			return s.LocalPaths(r.DocumentURI, r.Dialect)
		},
		extensions: func(s Settings, r Request) []string {
			return s.CopybookExtensions(r.DocumentURI)
		},
	},
	{
		Name: "downloaded-dsn",
		folders: func(s Settings, r Request) []string {
			return downloadedFolders(s.ProfileName(), s.DsnPaths(r.DocumentURI, r.Dialect), r.StoragePath)
		},
		extensions: func(Settings, Request) []string { return exactName },
	},
	{
		Name: "downloaded-uss",
		folders: func(s Settings, r Request) []string {
			return downloadedFolders(s.ProfileName(), s.UssPaths(r.DocumentURI, r.Dialect), r.StoragePath)
		},
		extensions: func(Settings, Request) []string { return exactName },
	},
}

func downloadedFolders(profile string, paths []string, storagePath string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = DatasetPath(profile, p, storagePath)
	}
	return out
}

// DatasetPath is the folder a downloaded dataset or USS directory of the
// given profile is stored in below the extension storage.
func DatasetPath(profile, dataset, storagePath string) string {
	return filepath.Join(storagePath, "zowe", "copybooks", profile, dataset)
}

// Resolver searches the folder kinds in order and stops at the first hit.
type Resolver struct {
	settings Settings
	search   SearchFunc
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to trace probes.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a resolver reading settings and probing with search.
func NewResolver(settings Settings, search SearchFunc, opts ...Option) *Resolver {
	r := &Resolver{
		settings: settings,
		search:   search,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the path of the copybook, or false when none of the folder
// kinds holds it.
func (r *Resolver) Resolve(documentURI, copybookName, dialect, storagePath string) (string, bool) {
	res, ok := r.ResolveRequest(Request{
		DocumentURI:  documentURI,
		CopybookName: copybookName,
		Dialect:      dialect,
		StoragePath:  storagePath,
	})
	return res.Path, ok
}

// Resolution is a successful lookup.
type Resolution struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// ResolveRequest is Resolve that also reports which folder kind matched.
func (r *Resolver) ResolveRequest(req Request) (Resolution, bool) {
	if r.settings == nil || r.search == nil {
		return Resolution{}, false
	}
	for _, kind := range FolderKinds {
		folders := kind.folders(r.settings, req)
		extensions := kind.extensions(r.settings, req)
		path, ok := r.search(req.CopybookName, folders, extensions, req.StoragePath)
		r.logger.Debug("copybook probe",
			"copybook", req.CopybookName,
			"kind", kind.Name,
			"folders", len(folders),
			"extensions", extensions,
			"found", ok)
		if ok {
			return Resolution{Name: req.CopybookName, Kind: kind.Name, Path: path}, true
		}
	}
	return Resolution{}, false
}
