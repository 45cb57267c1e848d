package config

// Config holds every configuration section
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Browse  BrowseConfig  `mapstructure:"browse"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// DatasetConfig points at the read-only movie source.
// Format is auto, csv or sqlite; Table is only used for sqlite.
type DatasetConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
	Table  string `mapstructure:"table"`
}

type BrowseConfig struct {
	DefaultSort string `mapstructure:"default_sort"`
	RandomCount int    `mapstructure:"random_count"`
	RandomMax   int    `mapstructure:"random_max"`
	Columns     int    `mapstructure:"columns"`
	TitleMaxLen int    `mapstructure:"title_max_len"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}
