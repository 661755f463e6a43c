// Package persistence selects the address book storage backend.
package persistence

import (
	"log/slog"
	"path/filepath"
	"strings"

	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/csvstore"
	"contacts/internal/infra/persistence/yamlstore"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the RecordStorage configured by storage.path and storage.format
func New(params Params) (repository.RecordStorage, error) {
	path := params.Config.Storage.Path
	format, err := ResolveFormat(path, params.Config.Storage.Format)
	if err != nil {
		return nil, err
	}

	// validation.email governs new input only; files may hold emails
	// accepted under either rule.
	emailRule := entity.StoredEmail

	params.Logger.Debug("Address book storage selected",
		slog.String("path", path),
		slog.String("format", format),
	)

	switch format {
	case FormatYAML:
		return yamlstore.New(path, yamlstore.WithEmailRule(emailRule)), nil
	default:
		return csvstore.New(path, csvstore.WithEmailRule(emailRule)), nil
	}
}

// ResolveFormat returns the explicit format, or derives it from the path extension.
func ResolveFormat(path, format string) (string, error) {
	if format != "" {
		switch strings.ToLower(format) {
		case FormatCSV:
			return FormatCSV, nil
		case FormatYAML:
			return FormatYAML, nil
		default:
			return "", errors.Errorf("unsupported storage format: %s", format)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatCSV, nil
	}
}
