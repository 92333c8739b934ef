package table

import "github.com/go-bcif/bcif/internal/options"

type config struct {
	strict bool
}

func defaultConfig() *config {
	return &config{strict: true}
}

// Option configures a File at construction time.
type Option = options.Option[*config]

// WithStrictBounds controls how an out-of-range row index is handled by
// every column accessor. With strict true (the default), an OOB index
// returns a neutral value (zero, empty string, or false) instead of
// touching the backing slice. With strict false, accessors index the
// backing slice directly and rely on Go's runtime bounds check, which
// panics on OOB access.
func WithStrictBounds(strict bool) Option {
	return options.New(func(c *config) { c.strict = strict })
}
