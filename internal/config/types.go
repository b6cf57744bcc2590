package config

// ScrollConfig tunes the smooth scroll spring.
type ScrollConfig struct {
	FPS       int     `koanf:"fps" yaml:"fps"`
	Frequency float64 `koanf:"frequency" yaml:"frequency"`
	Damping   float64 `koanf:"damping" yaml:"damping"`
}

// Config holds the termfolio settings.
type Config struct {
	ContentDir        string       `koanf:"content_dir" yaml:"content_dir"`
	Style             string       `koanf:"style" yaml:"style"`
	RowHeight         float64      `koanf:"row_height" yaml:"row_height"`
	ScrolledThreshold float64      `koanf:"scrolled_threshold" yaml:"scrolled_threshold"`
	ProbeLine         float64      `koanf:"probe_line" yaml:"probe_line"`
	Scroll            ScrollConfig `koanf:"scroll" yaml:"scroll"`
	Mouse             bool         `koanf:"mouse" yaml:"mouse"`
	LogFile           string       `koanf:"log_file" yaml:"log_file"`
}
