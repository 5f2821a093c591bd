package jsbridge

// Retainable is implemented by host handler objects whose lifetime is
// shared with the bridge. The bridge retains a handler when it stores it
// and releases it on replacement or Context teardown. Implementations
// must tolerate Release being invoked from an engine finalizer as well as
// from explicit host code.
type Retainable interface {
	Retain()
	Release()
}
