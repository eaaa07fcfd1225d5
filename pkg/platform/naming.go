// pkg/platform/naming.go
package platform

// LibPrefix is the filename prefix native libraries carry on every platform
// Folly is packaged for.
const LibPrefix = "lib"

// StaticLibFileName returns the on-disk filename of a static library,
// lib<name>.a. Folly and its Boost dependency ship static archives under
// exactly this form.
func StaticLibFileName(name string) string {
	return LibPrefix + name + ".a"
}
