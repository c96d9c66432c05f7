package decorify

// ResolveFunc maps a raw wiki link target to a resolved file path.
// The host supplies it; ok is false for unresolvable, ambiguous or
// nonexistent targets. It must be a synchronous in-memory lookup, it is
// called once per link occurrence on every rebuild.
type ResolveFunc func(target string) (path string, ok bool)

// BuildOptions holds options for decoration building.
type BuildOptions struct {
	Shortcodes map[string]string
	Rules      []Rule
	Resolve    ResolveFunc
	MarkerSide Side
}

// Option is a function that configures BuildOptions.
type Option func(*BuildOptions)

// WithShortcodes sets a shortcode overlay map. Tokens keep their colon
// delimiters as keys (":smile:"). The overlay shadows the built-in emoji
// alias table.
func WithShortcodes(m map[string]string) Option {
	return func(opts *BuildOptions) {
		opts.Shortcodes = m
	}
}

// WithRules sets the ordered path classification rule list.
func WithRules(rules []Rule) Option {
	return func(opts *BuildOptions) {
		opts.Rules = rules
	}
}

// WithResolver sets the host link resolver. Without one, wiki links are
// never decorated.
func WithResolver(fn ResolveFunc) Option {
	return func(opts *BuildOptions) {
		opts.Resolve = fn
	}
}

// WithMarkerSide sets the marker placement policy.
func WithMarkerSide(side Side) Option {
	return func(opts *BuildOptions) {
		opts.MarkerSide = side
	}
}

// WithStore reads rules and marker side from a settings store. The values
// are copied at option-apply time, so each rebuild that passes WithStore
// observes the store's current state.
func WithStore(s *Store) Option {
	return func(opts *BuildOptions) {
		if s == nil {
			return
		}
		opts.Rules = s.Rules()
		opts.MarkerSide = s.MarkerSide()
	}
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() *BuildOptions {
	return &BuildOptions{
		Rules:      DefaultRules(),
		MarkerSide: SideAfter,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *BuildOptions {
	options := defaultBuildOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
