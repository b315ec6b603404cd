// Package templates loads scenario map templates and fills their placeholders
package templates

//go:generate mockgen -destination=mock/mock_loader.go -package=templatesmock github.com/KirkDiggler/dominions-mapgen/internal/templates Loader

import (
	"context"
	"embed"
	"io/fs"
	"os"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

// Extension is appended to a template name to find its file
const Extension = ".map"

//go:embed data/*.map
var embedded embed.FS

// Loader reads a named template
type Loader interface {
	// Load returns the raw template text
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if no template has that name
	// Returns errors.Internal for read failures
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput defines the request for loading a template
type LoadInput struct {
	// Name without extension, e.g. "Arena_with_cave"
	Name string
}

// LoadOutput defines the response for loading a template
type LoadOutput struct {
	Content string
}

// Config holds the template source. An empty Dir uses the templates built
// into the binary.
type Config struct {
	Dir string
	FS  fs.FS
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Dir != "" && c.FS != nil {
		return errors.InvalidArgument("set either Dir or FS, not both")
	}
	if c.Dir != "" {
		info, err := os.Stat(c.Dir)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "template dir is not readable")
		}
		if !info.IsDir() {
			return errors.InvalidArgumentf("template dir %s is not a directory", c.Dir)
		}
	}
	return nil
}

type fsLoader struct {
	files fs.FS
}

// NewLoader creates a Loader reading from the configured source. Files are
// read on every call.
func NewLoader(cfg *Config) (Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var files fs.FS
	switch {
	case cfg.FS != nil:
		files = cfg.FS
	case cfg.Dir != "":
		files = os.DirFS(cfg.Dir)
	default:
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, errors.Wrap(err, "failed to open embedded templates")
		}
		files = sub
	}

	return &fsLoader{files: files}, nil
}

func (l *fsLoader) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("template name is required")
	}

	name := input.Name + Extension
	if !fs.ValidPath(name) {
		return nil, errors.InvalidArgumentf("invalid template name %q", input.Name)
	}

	data, err := fs.ReadFile(l.files, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("template %s not found", name)
		}
		return nil, errors.Wrapf(err, "failed to read template %s", name)
	}

	return &LoadOutput{Content: string(data)}, nil
}
