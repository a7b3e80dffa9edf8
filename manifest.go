package sfcrawl

// ProductSeeds maps a product to its starting URLs.
type ProductSeeds struct {
	Product string   `yaml:"product" json:"product"`
	URLs    []string `yaml:"urls" json:"urls"`
}

// Manifest is the start-link manifest read once at coordinator startup.
type Manifest struct {
	Products []ProductSeeds `yaml:"products" json:"products"`
}

// Validate returns an error if the manifest is unusable.
func (m *Manifest) Validate() error {
	if len(m.Products) == 0 {
		return Errorf(EINVALID, "manifest contains no products")
	}
	seen := make(map[string]bool, len(m.Products))
	for _, p := range m.Products {
		if p.Product == "" {
			return Errorf(EINVALID, "manifest entry missing product name")
		}
		if seen[p.Product] {
			return Errorf(EINVALID, "duplicate product %q in manifest", p.Product)
		}
		seen[p.Product] = true
		if len(p.URLs) == 0 {
			return Errorf(EINVALID, "product %q has no seed URLs", p.Product)
		}
	}
	return nil
}

// Config holds the crawl-wide settings, read once and immutable during a run.
type Config struct {
	// OutputDir is the root of the markdown output tree.
	OutputDir string `yaml:"output_dir"`

	// MaxLinkLevel is the depth ceiling. Links discovered beyond it are
	// silently dropped and counted.
	MaxLinkLevel int `yaml:"max_link_level"`

	// MaxPagesPerProduct is the per-product page ceiling. Reaching it
	// closes the product's frontier.
	MaxPagesPerProduct int `yaml:"max_pages_per_product"`

	// WorkersPerProduct is the fixed worker-pool size for each product.
	WorkersPerProduct int `yaml:"workers_per_product"`

	// RequestsPerSecond caps the per-domain fetch rate.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	Scope Scope `yaml:"scope"`
}

// Defaults mirrored from the crawl configuration of the help-portal scrape.
const (
	DefaultMaxLinkLevel       = 50
	DefaultMaxPagesPerProduct = 50000
	DefaultWorkersPerProduct  = 3
	DefaultRequestsPerSecond  = 2.0
)

// Validate checks the config and fills in defaults for zero values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if len(c.Scope.AllowedDomains) == 0 {
		return Errorf(EINVALID, "at least one allowed domain required")
	}
	if c.MaxLinkLevel <= 0 {
		c.MaxLinkLevel = DefaultMaxLinkLevel
	}
	if c.MaxPagesPerProduct <= 0 {
		c.MaxPagesPerProduct = DefaultMaxPagesPerProduct
	}
	if c.WorkersPerProduct <= 0 {
		c.WorkersPerProduct = DefaultWorkersPerProduct
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = DefaultRequestsPerSecond
	}
	return nil
}
