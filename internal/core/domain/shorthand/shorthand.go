/*
Package shorthand defines the rewrite rules that turn pine words into
native commands.
*/
package shorthand

// Rule rewrites an input line starting with Prefix into Replacement
// followed by whatever came after the prefix.
type Rule struct {
	Prefix      string `yaml:"prefix"`
	Replacement string `yaml:"replacement"`
}
