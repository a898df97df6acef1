package config

type Config struct {
	Silent  bool
	Color   bool
	Workers int
	N       uint64
	// HasN is set when N came from the command line, otherwise it is read from stdin
	HasN bool
}

func New() *Config {
	return &Config{
		Silent:  false,
		Color:   false,
		Workers: 1,
	}
}
