package irgen

import (
	"fmt"
	"io/ioutil"

	"github.com/pelletier/go-toml"
)

// Config is the set of feature flags controlling a generation session.
type Config struct {
	// InsertImplicitCasts controls whether the implicit-cast post-processing
	// step rewrites the tree.  The step itself always runs so that step
	// ordering is stable.
	InsertImplicitCasts bool `toml:"implicit-casts"`

	// GenerateAnnotations controls whether annotations recorded on
	// descriptors are materialized into the IR tree.
	GenerateAnnotations bool `toml:"annotations"`

	// GenerateFacades controls whether facade classes are synthesized for
	// declarations originating in deserialized multi-file-class containers.
	GenerateFacades bool `toml:"facades"`

	// MaxResolveRounds bounds the unbound-symbol resolution fixed-point loop.
	// Zero selects the default bound.
	MaxResolveRounds int `toml:"max-resolve-rounds"`
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		InsertImplicitCasts: true,
		GenerateAnnotations: true,
		GenerateFacades:     true,
	}
}

// LoadConfig loads a generation configuration profile from a TOML file,
// overlaying the default configuration.
func LoadConfig(path string) (Config, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read generation profile at `%s`: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(buff, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing generation profile at `%s`: %w", path, err)
	}

	return cfg, nil
}
