package chromepdf

// invokerConfig holds internal configuration for an Invoker.
type invokerConfig struct {
	platform       string
	root           string
	binaryPath     string
	browserPath    string
	bundledBrowser bool
	runner         CommandRunner
	env            []string
	dir            string
}

func defaultConfig() invokerConfig {
	return invokerConfig{
		root:   ".",
		runner: DefaultRunner{},
	}
}

// Option configures an [Invoker].
type Option func(*invokerConfig)

// WithPlatform overrides the detected operating system. Accepts the same
// names as [ParsePlatform].
func WithPlatform(name string) Option {
	return func(c *invokerConfig) {
		c.platform = name
	}
}

// WithRoot sets the directory that bundled binaries are resolved against.
// Defaults to the working directory.
func WithRoot(dir string) Option {
	return func(c *invokerConfig) {
		c.root = dir
	}
}

// WithBinaryPath points the invoker at a specific converter executable
// instead of the one resolved for the platform. The platform must still be
// supported.
func WithBinaryPath(path string) Option {
	return func(c *invokerConfig) {
		c.binaryPath = path
	}
}

// WithBrowserPath overrides the bundled browser location. It implies
// [WithBundledBrowser].
func WithBrowserPath(path string) Option {
	return func(c *invokerConfig) {
		c.browserPath = path
		c.bundledBrowser = true
	}
}

// WithBundledBrowser makes the invoker append the platform's bundled browser
// path to every argument list. Without it the external binary locates a
// browser on its own.
func WithBundledBrowser() Option {
	return func(c *invokerConfig) {
		c.bundledBrowser = true
	}
}

// WithRunner replaces the process runner, mostly useful in tests.
func WithRunner(r CommandRunner) Option {
	return func(c *invokerConfig) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithEnv sets the environment of the child process. A nil slice inherits
// the parent's environment.
func WithEnv(env []string) Option {
	return func(c *invokerConfig) {
		c.env = env
	}
}

// WithDir sets the working directory of the child process.
func WithDir(dir string) Option {
	return func(c *invokerConfig) {
		c.dir = dir
	}
}
