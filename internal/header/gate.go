package header

// ShouldRender reports whether the header is shown at the given navigation
// depth. Only the two top-level positions carry a header.
func ShouldRender(depthIndex int) bool {
	return depthIndex == 0 || depthIndex == 1
}
