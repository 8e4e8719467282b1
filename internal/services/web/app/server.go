package app

import "net/http"

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		PublicModules:       cfg.PublicModules,
		AppModules:          cfg.AppModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
