package sfcrawl_test

import (
	"testing"

	"github.com/jkoenig72/sfcrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid manifest", func(t *testing.T) {
		t.Parallel()

		m := &sfcrawl.Manifest{
			Products: []sfcrawl.ProductSeeds{
				{Product: "Sales_Cloud", URLs: []string{"https://help.example.com/a"}},
			},
		}

		assert.NoError(t, m.Validate())
	})

	t.Run("rejects empty manifest", func(t *testing.T) {
		t.Parallel()

		err := (&sfcrawl.Manifest{}).Validate()

		require.Error(t, err)
		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(err))
	})

	t.Run("rejects duplicate products", func(t *testing.T) {
		t.Parallel()

		m := &sfcrawl.Manifest{
			Products: []sfcrawl.ProductSeeds{
				{Product: "Sales_Cloud", URLs: []string{"https://help.example.com/a"}},
				{Product: "Sales_Cloud", URLs: []string{"https://help.example.com/b"}},
			},
		}

		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(m.Validate()))
	})

	t.Run("rejects product without seeds", func(t *testing.T) {
		t.Parallel()

		m := &sfcrawl.Manifest{
			Products: []sfcrawl.ProductSeeds{{Product: "Sales_Cloud"}},
		}

		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(m.Validate()))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults for zero values", func(t *testing.T) {
		t.Parallel()

		c := &sfcrawl.Config{
			OutputDir: "out",
			Scope:     sfcrawl.Scope{AllowedDomains: []string{"help.example.com"}},
		}

		require.NoError(t, c.Validate())
		assert.Equal(t, sfcrawl.DefaultMaxLinkLevel, c.MaxLinkLevel)
		assert.Equal(t, sfcrawl.DefaultMaxPagesPerProduct, c.MaxPagesPerProduct)
		assert.Equal(t, sfcrawl.DefaultWorkersPerProduct, c.WorkersPerProduct)
		assert.Equal(t, sfcrawl.DefaultRequestsPerSecond, c.RequestsPerSecond)
	})

	t.Run("requires output directory", func(t *testing.T) {
		t.Parallel()

		c := &sfcrawl.Config{Scope: sfcrawl.Scope{AllowedDomains: []string{"x"}}}
		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(c.Validate()))
	})

	t.Run("requires allowed domains", func(t *testing.T) {
		t.Parallel()

		c := &sfcrawl.Config{OutputDir: "out"}
		assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(c.Validate()))
	})
}
