package model

// EntryPointKind discriminates the descriptor variants of a launch.
type EntryPointKind string

const (
	// EntryPointApplication is a standalone application descriptor.
	EntryPointApplication EntryPointKind = "application"
	// EntryPointApplet is an embedded applet descriptor.
	EntryPointApplet EntryPointKind = "applet"
	// EntryPointInstaller is an extension installer descriptor.
	EntryPointInstaller EntryPointKind = "installer"
)

// EntryPoint describes what is being launched. All variants carry the
// same single attribute this layer reads: the identifier of a custom
// progress listener, so no downcasting or kind inspection is needed.
type EntryPoint struct {
	Kind     EntryPointKind
	Listener string // custom progress listener identifier, empty for none
}

// ProgressListener returns the custom listener identifier and whether
// one was named.
func (e EntryPoint) ProgressListener() (string, bool) {
	return e.Listener, e.Listener != ""
}
