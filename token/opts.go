package token

type tokenOpts struct {
	name string
}

type TokenOpt func(*tokenOpts)

// TokenName names the source, for positions in error messages.
func TokenName(name string) TokenOpt {
	return func(o *tokenOpts) { o.name = name }
}
