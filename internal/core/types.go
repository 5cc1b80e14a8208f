package core

// ParameterProvider is implemented by anything the HUD can describe.
type ParameterProvider interface {
	Name() string
	Parameters() ParameterSnapshot
}
