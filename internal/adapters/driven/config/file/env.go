package file

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/farescope/internal/core/ports/driven"
)

// Ensure EnvStore implements the interface.
var _ driven.ConfigStore = (*EnvStore)(nil)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FARESCOPE_"

// LoadEnv loads variables from dotenv files into the process environment.
// Variables already set are not overridden. With no paths, ".env" in the
// working directory is tried. Missing files are ignored.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// EnvKey maps a config key to its environment variable name.
// E.g., "compress.max_results" becomes "FARESCOPE_COMPRESS_MAX_RESULTS".
func EnvKey(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return EnvPrefix + strings.ToUpper(r.Replace(key))
}

// EnvStore reads FARESCOPE_* variables before falling back to the wrapped
// store. Writes always go to the wrapped store.
type EnvStore struct {
	base   driven.ConfigStore
	lookup func(string) (string, bool)
}

// NewEnvStore wraps base with environment overrides.
func NewEnvStore(base driven.ConfigStore) *EnvStore {
	return &EnvStore{base: base, lookup: os.LookupEnv}
}

// Get returns the raw environment string when the override is set.
func (s *EnvStore) Get(key string) (any, bool) {
	if v, ok := s.lookup(EnvKey(key)); ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *EnvStore) GetString(key string) string {
	if v, ok := s.lookup(EnvKey(key)); ok {
		return v
	}
	return s.base.GetString(key)
}

// GetInt retrieves an integer configuration value.
// An override that is not an integer reads as 0.
func (s *EnvStore) GetInt(key string) int {
	if v, ok := s.lookup(EnvKey(key)); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return s.base.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
func (s *EnvStore) GetBool(key string) bool {
	if v, ok := s.lookup(EnvKey(key)); ok {
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return s.base.GetBool(key)
}

// Set stores a value in the wrapped store.
func (s *EnvStore) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Load reloads the wrapped store.
func (s *EnvStore) Load() error {
	return s.base.Load()
}

// Path returns the wrapped store's file path.
func (s *EnvStore) Path() string {
	return s.base.Path()
}
