package types

// SuccessEnvelope is the uniform success payload wrapper.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorEnvelope is the uniform failure shape. FallbackToManual is only set
// for degraded catalog search responses so clients can offer hand entry.
type ErrorEnvelope struct {
	Success          bool   `json:"success"`
	Error            string `json:"error"`
	Details          any    `json:"details,omitempty"`
	FallbackToManual bool   `json:"fallbackToManual,omitempty"`
}
