package ports

// SessionController defines the contract for handling submitted input lines.
type SessionController interface {
	// Handle processes one submitted line. Calls are serialized.
	Handle(inputLine string)

	// SwitchTheme applies the named theme, falling back to the default.
	SwitchTheme(name string)

	// CurrentTheme returns the name of the applied theme profile.
	CurrentTheme() string
}
