package organization

// TokenGenerator produces the unguessable tokens embedded in invitation
// links.
type TokenGenerator interface {
	Generate() (string, error)
}
