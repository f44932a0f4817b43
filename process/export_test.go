package process

// WithExitFunc replaces os.Exit for tests.
func WithExitFunc(exit func(code int)) Option {
	return func(cfg *config) {
		cfg.exit = exit
	}
}

// WithAbortFunc replaces the SIGABRT abort for tests.
func WithAbortFunc(abort func()) Option {
	return func(cfg *config) {
		cfg.abort = abort
	}
}
