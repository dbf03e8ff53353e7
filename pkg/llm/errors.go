package llm

import "fmt"

// ProviderError wraps any failure of the generation backend: transport
// errors, non-200 statuses, undecodable bodies. Callers that treat generation
// as optional can detect it with errors.As and degrade gracefully.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ConfigurationError signals missing or unusable provider configuration,
// typically an absent API key. Unlike ProviderError it must not be swallowed:
// the boundary maps it to a service-unavailable response.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}
