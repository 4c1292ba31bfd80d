package config

type Config struct {
	HeapDump HeapDumpConfig `yaml:"heapDump"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type HeapDumpConfig struct {
	// Args overrides the launch arguments scanned for the heap dump path
	// directive. Empty means the real process arguments.
	Args []string `yaml:"args"`

	Retention RetentionConfig `yaml:"retention"`
}

type RetentionConfig struct {
	// KeepCount is how many rotated dumps to keep. Zero or negative means
	// unlimited.
	KeepCount int `yaml:"keepCount"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "text"
}
