// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default file locations and layout constants used when no configuration
// overrides them.
const (
	DefaultInput        = "navigation.yml"
	DefaultTemplate     = "template.html"
	DefaultOutputDir    = "."
	DefaultLineLimit    = 23
	DefaultHeaderWeight = 3
)

// LayoutConfig holds the column balancing parameters.
type LayoutConfig struct {
	// LineLimit is the maximum weight the first column may hold (default 23).
	LineLimit int `json:"line_limit" yaml:"line_limit" mapstructure:"line_limit"`

	// HeaderWeight is the weight of a card's title line (default 3).
	HeaderWeight int `json:"header_weight" yaml:"header_weight" mapstructure:"header_weight"`
}

// SiteConfig holds settings for a site build.
type SiteConfig struct {
	// Input is the path to the navigation document (default navigation.yml).
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Template is the path to the page template (default template.html).
	Template string `json:"template" yaml:"template" mapstructure:"template"`

	// OutputDir is the directory receiving the rendered pages (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// ReservedKeys lists the top-level keys treated as global template data.
	// Empty means DefaultReservedKeys.
	ReservedKeys []string `json:"reserved_keys,omitempty" yaml:"reserved_keys,omitempty" mapstructure:"reserved_keys"`

	Layout LayoutConfig `json:"layout" yaml:"layout" mapstructure:"layout"`
}

// DefaultSiteConfig returns the configuration matching the stock site layout.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Input:     DefaultInput,
		Template:  DefaultTemplate,
		OutputDir: DefaultOutputDir,
		Layout: LayoutConfig{
			LineLimit:    DefaultLineLimit,
			HeaderWeight: DefaultHeaderWeight,
		},
	}
}

// WithDefaults returns a copy of c with empty fields filled from
// DefaultSiteConfig.
func (c SiteConfig) WithDefaults() SiteConfig {
	d := DefaultSiteConfig()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Template == "" {
		c.Template = d.Template
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.Layout.LineLimit <= 0 {
		c.Layout.LineLimit = d.Layout.LineLimit
	}
	if c.Layout.HeaderWeight <= 0 {
		c.Layout.HeaderWeight = d.Layout.HeaderWeight
	}
	return c
}

// Reserved returns the reserved key set configured for the build.
func (c SiteConfig) Reserved() ReservedKeys {
	if len(c.ReservedKeys) == 0 {
		return DefaultReservedKeys()
	}
	return NewReservedKeys(c.ReservedKeys...)
}
