package persistence

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"contacts/config"
	"contacts/internal/infra/persistence/csvstore"
	"contacts/internal/infra/persistence/yamlstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path    string
		format  string
		want    string
		wantErr bool
	}{
		{path: "addressbook.csv", want: FormatCSV},
		{path: "contacts.yaml", want: FormatYAML},
		{path: "contacts.YML", want: FormatYAML},
		{path: "contacts", want: FormatCSV},
		{path: "contacts.yaml", format: "csv", want: FormatCSV},
		{path: "contacts.csv", format: "YAML", want: FormatYAML},
		{path: "contacts.csv", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			got, err := ResolveFormat(tt.path, tt.format)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.Default()
	cfg.Storage.Path = "book.yaml"
	storage, err := New(Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &yamlstore.Store{}, storage)
	assert.Equal(t, "book.yaml", storage.Location())

	cfg = config.Default()
	storage, err = New(Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &csvstore.Store{}, storage)
}

func TestNew_LoadsEmailsUnderEitherRule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	content := "Name,Phones,Birthday,Email,Address\n" +
		"Mia,[1],,mia@example.com,\n" +
		"Leo,[2],,leo'@'example.com,\n"

	for _, rule := range []string{"conventional", "legacy"} {
		t.Run(rule, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.csv")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			cfg := config.Default()
			cfg.Storage.Path = path
			cfg.Validation.Email = rule

			storage, err := New(Params{Config: cfg, Logger: logger})
			require.NoError(t, err)

			records, err := storage.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, records, 2)
		})
	}
}
