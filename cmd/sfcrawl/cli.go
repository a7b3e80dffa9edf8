package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string  `short:"c" default:"config.yaml" help:"Path to the crawl configuration file"`
	Manifest string  `short:"m" default:"manifest.yaml" help:"Path to the start-link manifest"`
	Output   string  `short:"o" help:"Output directory (overrides config)"`
	Workers  int     `short:"w" help:"Workers per product (overrides config)"`
	MaxPages int     `help:"Page ceiling per product (overrides config)"`
	MaxDepth int     `help:"Link depth ceiling (overrides config)"`
	RPS      float64 `name:"rps" help:"Requests per second per domain (overrides config)"`
	Sitemap  bool    `help:"Expand seeds from the site's sitemap before crawling"`
	Verbose  bool    `short:"v" help:"Enable debug logging"`
}
