package admin

// Verifier decides whether a submitted one-time code is acceptable for the
// channel it was requested on. The demo build uses StaticVerifier; a real
// deployment would swap in an implementation backed by actual code
// issuance and expiry.
type Verifier interface {
	Verify(channel Channel, code string) bool
}

// StaticVerifier accepts a single fixed code on every channel. The code
// comes from configuration, not a literal, so even the demo behavior is
// injectable.
type StaticVerifier struct {
	Code string
}

// Verify reports whether code matches the configured value. The channel is
// deliberately ignored: the demo issues the same code everywhere.
func (v StaticVerifier) Verify(_ Channel, code string) bool {
	return code != "" && code == v.Code
}
