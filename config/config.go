package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	defaultPath        = "."
	defaultStoragePath = "addressbook.csv"
	defaultPageSize    = 5
	defaultQRCodeSize  = 256

	// envPrefix scopes environment overrides, e.g. CONTACTS_STORAGE_PATH.
	envPrefix = "CONTACTS_"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Storage configuration for the address book file
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Book configuration for listing behaviour
	Book BookConfig `json:"book" yaml:"book"`

	// Validation configuration for field rules
	Validation ValidationConfig `json:"validation" yaml:"validation"`

	// QRCode configuration for contact QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// StorageConfig defines where and how the address book is persisted
type StorageConfig struct {
	// Path of the address book file
	Path string `json:"path" yaml:"path" validate:"required"`

	// Format of the file: "csv" or "yaml". Empty means derive from the path extension.
	Format string `json:"format" yaml:"format" validate:"omitempty,oneof=csv yaml"`
}

// BookConfig defines address book listing configuration
type BookConfig struct {
	// Number of records per page of "show all"
	PageSize int `json:"pageSize" yaml:"pageSize" validate:"gte=1"`
}

// ValidationConfig defines field validation rules
type ValidationConfig struct {
	// Email rule: "conventional" or "legacy"
	Email string `json:"email" yaml:"email" validate:"omitempty,oneof=conventional legacy"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size" validate:"gte=21"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
	OutputDir            string `json:"outputDir" yaml:"outputDir"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Env.Env = "local"
	cfg.Env.ServiceName = "contacts"
	cfg.Env.Log = Log{Pretty: true, Level: "warn"}
	cfg.Storage = StorageConfig{Path: defaultStoragePath}
	cfg.Book = BookConfig{PageSize: defaultPageSize}
	cfg.Validation = ValidationConfig{Email: "conventional"}
	cfg.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M", OutputDir: defaultPath}

	return cfg
}

// ErrConfigNotFound is returned by LoadWithEnv when no config file exists in any search path.
var ErrConfigNotFound = errors.New("config file not found")

// LoadWithEnv loads .yaml files through koanf into a copy of base.
func LoadWithEnv[T any](base *T, currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	if base != nil {
		*cfg = *base
	}
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Wrapf(ErrConfigNotFound, "%s.yaml", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := loadEnv(koanfInstance); err != nil {
		return nil, err
	}

	if err := unmarshal(koanfInstance, cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// loadEnv overlays environment variables on top of the keys already loaded.
func loadEnv(koanfInstance *koanf.Koanf) error {
	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: CONTACTS_BOOK_PAGESIZE -> book.pageSize
			key := canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return errors.Wrap(err, "load env variables failed")
	}

	return nil
}

func unmarshal(koanfInstance *koanf.Koanf, cfg any) error {
	// Unmarshal into the config struct (case-insensitive to match env vars)
	return koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	})
}

// New loads config.yaml over the defaults and validates the result.
// A missing config file is not an error: defaults plus environment apply.
func New() (*Config, error) {
	cfg, err := LoadWithEnv(Default(), "config", "config", "../config", "../../config")
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = fromEnv(Default())
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fromEnv applies environment overrides to base without a config file.
func fromEnv(base *Config) (*Config, error) {
	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(defaultsProvider{base}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, "load defaults failed")
	}

	if err := loadEnv(koanfInstance); err != nil {
		return nil, err
	}

	cfg := *base
	if err := unmarshal(koanfInstance, &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal env config failed")
	}

	return &cfg, nil
}

// defaultsProvider exposes a config value to koanf as a YAML document.
type defaultsProvider struct {
	cfg *Config
}

func (p defaultsProvider) ReadBytes() ([]byte, error) {
	content, err := yamlv3.Marshal(p.cfg)

	return content, errors.WithStack(err)
}

func (p defaultsProvider) Read() (map[string]any, error) {
	return nil, errors.New("defaultsProvider does not support Read")
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
