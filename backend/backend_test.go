package backend

import (
	"flag"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/backend/internal/database"
	"vincit.fi/image-browser/common"
)

func TestInitializeStores(t *testing.T) {
	a := require.New(t)

	dir := t.TempDir()
	stores, err := InitializeStores(dir)
	a.Nil(err)
	defer stores.Close()

	a.FileExists(filepath.Join(dir, database.ImageBrowserDir, DatabaseFileName))
	a.Equal(api.DefaultThumbnailWidth, stores.Settings.ThumbnailWidth())
}

func TestInitializeStores_MissingDirectory(t *testing.T) {
	a := require.New(t)

	stores, err := InitializeStores(filepath.Join(t.TempDir(), "missing"))
	a.Nil(stores)
	a.NotNil(err)
}

func TestApplyParams(t *testing.T) {
	a := require.New(t)

	stores, err := InitializeStores(t.TempDir())
	a.Nil(err)
	defer stores.Close()

	t.Run("Width not given keeps the stored value", func(t *testing.T) {
		params := common.ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{})
		a.Nil(ApplyParams(params, stores.Settings))
		a.Equal(api.DefaultThumbnailWidth, stores.Settings.ThumbnailWidth())
	})
	t.Run("Width is stored", func(t *testing.T) {
		params := common.ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-thumbnailWidth", "180"})
		a.Nil(ApplyParams(params, stores.Settings))
		a.Equal(180, stores.Settings.ThumbnailWidth())
	})
	t.Run("Negative width is an error", func(t *testing.T) {
		params := common.ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-thumbnailWidth", "-1"})
		a.ErrorIs(ApplyParams(params, stores.Settings), database.ErrInvalidThumbnailWidth)
		a.Equal(180, stores.Settings.ThumbnailWidth())
	})
}
