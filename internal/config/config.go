package config

// CaseInsensitiveEnv disables case-sensitive matching when present in the
// environment, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// LookupFunc reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config holds the parameters of a single search run.
type Config struct {
	query         string
	filePath      string
	caseSensitive bool
}

// New returns a Config with the given parameters.
func New(query, filePath string, caseSensitive bool) Config {
	return Config{
		query:         query,
		filePath:      filePath,
		caseSensitive: caseSensitive,
	}
}

// Build creates a Config from process arguments, where args[0] is the
// program name followed by the query and the file path. Extra arguments are
// ignored.
func Build(args []string, lookupEnv LookupFunc) (Config, error) {
	if len(args) < 2 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 3 {
		return Config{}, ErrMissingFilePath
	}

	_, insensitive := lookupEnv(CaseInsensitiveEnv)
	return New(args[1], args[2], !insensitive), nil
}

// Query returns the substring to search for.
func (c Config) Query() string { return c.query }

// FilePath returns the path of the file to search.
func (c Config) FilePath() string { return c.filePath }

// CaseSensitive reports whether matching respects case.
func (c Config) CaseSensitive() bool { return c.caseSensitive }
