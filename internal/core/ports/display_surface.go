package ports

/*
DisplaySurface is where a session writes its output. It receives whole
lines of text and color changes; it never interprets them.
*/
type DisplaySurface interface {
	AppendLine(text string)
	ClearInput()
	ApplyColors(outputBg, outputFg, inputBg, inputFg string)
}
