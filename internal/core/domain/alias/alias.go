/*
Package alias defines the core domain entity for a session alias.
*/
package alias

/*
Alias maps a user-chosen token to the replacement it expands to when it
appears as the first word of an input line. This is a core domain entity.
*/
type Alias struct {
	Name    string
	Command string
}
