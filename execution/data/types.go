package data

// Types names the kind of a result value as a string.
type Types string

// The result type taxonomy shared by all engines.
const (
	BOOL     Types = "bool"
	ERROR    Types = "error"
	FUNCTION Types = "function"
	INT      Types = "int"
	MAP      Types = "map"
	STRING   Types = "string"
	NONE     Types = "none"
	FLOAT    Types = "float"
	LIST     Types = "list"
	SET      Types = "set"
	SYMBOL   Types = "symbol"
)
