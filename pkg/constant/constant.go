package constant

const (
	DefaultTokenType  = "Bearer"
	MinPasswordLength = 8
)
