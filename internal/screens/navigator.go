package screens

// Destination identifies a screen that can be pushed on the navigation stack.
type Destination struct {
	PhotoID int
}

// Navigator is the navigation sink screens notify. The UI layer owns the
// stack; screens never manipulate it directly.
type Navigator interface {
	NavigateTo(dest Destination)
	NavigateBack()
	NavigateToRoot()
}
