package workspacefinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/tourbook/internal/domain"
)

const (
	EnvStorePath = "TOURBOOK_STORE"
	EnvCurrency  = "TOURBOOK_CURRENCY"
)

// LoadConfig loads tourbook.yaml from the workspace root, applies defaults and then
// environment overrides (.env in root, process env wins). When tourbook.yaml is
// missing the returned config still carries defaults and overrides, and the error
// is KindNotFound so callers may proceed.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, readErr := os.ReadFile(path)
	if readErr == nil {
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		applyYAML(&cfg, y)
	}

	if err := applyEnv(&cfg, root); err != nil {
		return cfg, err
	}

	if readErr != nil {
		kind := domain.KindInvalidConfig
		if errors.Is(readErr, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: kind,
			Path: path,
			Err:  readErr,
		}
	}
	return cfg, nil
}

// StorePath resolves the configured store path against the workspace root.
func StorePath(root string, cfg domain.Config) string {
	p := strings.TrimSpace(cfg.Store.Path)
	if p == "" {
		p = domain.DefaultConfig().Store.Path
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func applyYAML(cfg *domain.Config, y yamlConfig) {
	if y.Tourbook.Store.Path != "" {
		cfg.Store.Path = y.Tourbook.Store.Path
	}
	if y.Tourbook.Store.Format != "" {
		cfg.Store.Format = y.Tourbook.Store.Format
	}
	if y.Tourbook.Display.Currency != "" {
		cfg.Display.Currency = y.Tourbook.Display.Currency
	}
	if y.Tourbook.Display.RowTemplate != "" {
		cfg.Display.RowTemplate = y.Tourbook.Display.RowTemplate
	}
}

func applyEnv(cfg *domain.Config, root string) error {
	vars := map[string]string{}

	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err == nil {
		fileVars, err := godotenv.Read(envPath)
		if err != nil {
			return &domain.OpError{
				Op:   "workspacefinder.loadenv",
				Kind: domain.KindInvalidConfig,
				Path: envPath,
				Err:  err,
			}
		}
		vars = fileVars
	}

	for _, k := range []string{EnvStorePath, EnvCurrency} {
		if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
			vars[k] = v
		}
	}

	if v := strings.TrimSpace(vars[EnvStorePath]); v != "" {
		cfg.Store.Path = v
	}
	if v := strings.TrimSpace(vars[EnvCurrency]); v != "" {
		cfg.Display.Currency = v
	}
	return nil
}

type yamlConfig struct {
	Tourbook struct {
		Store struct {
			Path   string `yaml:"path"`
			Format string `yaml:"format"`
		} `yaml:"store"`

		Display struct {
			Currency    string `yaml:"currency"`
			RowTemplate string `yaml:"row_template"`
		} `yaml:"display"`
	} `yaml:"tourbook"`
}
