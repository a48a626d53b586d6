package validate

// UnknownPolicy controls how keys that no field declares are handled.
type UnknownPolicy int

const (
	// UnknownIgnore accepts undeclared keys silently.
	UnknownIgnore UnknownPolicy = iota
	// UnknownReport reports every undeclared key as unknown_key. Keys
	// starting with "_" are managed by the CMS and always accepted.
	UnknownReport
)

// Option configures a validation run.
type Option func(*config)

type config struct {
	failFast    bool
	unknown     UnknownPolicy
	strictSlugs bool
}

// FailFast stops at the first violation.
func FailFast() Option { return func(c *config) { c.failFast = true } }

// WithUnknown sets the policy for undeclared keys.
func WithUnknown(p UnknownPolicy) Option { return func(c *config) { c.unknown = p } }

// StrictSlugs additionally requires slugs in the lowercase dash-separated
// form slug.Make produces. Without it a slug only has to be present and
// within its maximum length.
func StrictSlugs() Option { return func(c *config) { c.strictSlugs = true } }

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}
