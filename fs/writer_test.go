package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jkoenig72/sfcrawl"
	"github.com/jkoenig72/sfcrawl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteArtifact(t *testing.T) {
	t.Parallel()

	t.Run("writes into product directory", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		artifact := &sfcrawl.MarkdownArtifact{
			Filename: "output_help.example.com_a.md",
			Product:  "Sales_Cloud",
			Content:  "---\ntitle: A\n---\n\n# A\n",
		}

		require.NoError(t, w.WriteArtifact(context.Background(), artifact))

		content, err := os.ReadFile(filepath.Join(baseDir, "Sales_Cloud", "output_help.example.com_a.md"))
		require.NoError(t, err)
		assert.Equal(t, artifact.Content, string(content))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		artifact := &sfcrawl.MarkdownArtifact{
			Filename: "output_a.md",
			Product:  "Sales_Cloud",
			Content:  "first",
		}
		require.NoError(t, w.WriteArtifact(context.Background(), artifact))

		artifact.Content = "second"
		require.NoError(t, w.WriteArtifact(context.Background(), artifact))

		content, err := os.ReadFile(filepath.Join(baseDir, "Sales_Cloud", "output_a.md"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("products write to separate directories", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		for _, product := range []string{"Sales_Cloud", "Service_Cloud"} {
			artifact := &sfcrawl.MarkdownArtifact{
				Filename: "output_a.md",
				Product:  product,
				Content:  product,
			}
			require.NoError(t, w.WriteArtifact(context.Background(), artifact))
		}

		sales, err := os.ReadFile(filepath.Join(baseDir, "Sales_Cloud", "output_a.md"))
		require.NoError(t, err)
		service, err := os.ReadFile(filepath.Join(baseDir, "Service_Cloud", "output_a.md"))
		require.NoError(t, err)
		assert.NotEqual(t, string(sales), string(service))
	})

	t.Run("rejects artifact without filename", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		err := w.WriteArtifact(context.Background(), &sfcrawl.MarkdownArtifact{Product: "Sales_Cloud"})

		require.Error(t, err)
		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(err))
	})

	t.Run("rejects artifact without product", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		err := w.WriteArtifact(context.Background(), &sfcrawl.MarkdownArtifact{Filename: "output_a.md"})

		require.Error(t, err)
		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(err))
	})
}
