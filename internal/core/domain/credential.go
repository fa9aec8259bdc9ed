package domain

// Credential is one entry of the static login table: a username bound to a
// plaintext secret and a role. The store is seeded once at startup and never
// mutated; secrets are deliberately kept as plaintext exact-match values to
// mirror the demo credential list this system ships with.
type Credential struct {
	Username string
	Secret   string
	Role     Role
}
