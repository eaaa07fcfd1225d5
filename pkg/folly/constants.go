// pkg/folly/constants.go
package folly

const (
	// mainPackage is the pkg-config name Folly's own metadata installs under.
	mainPackage = "libfolly"

	// Auxiliary dependencies Folly's .pc file fails to declare.
	fmtPackage    = "fmt"
	gflagsPackage = "gflags"
)

// boostContextNames lists the boost_context static library basenames in the
// order they are tried. The -mt suffix appears on multi-threaded Boost
// builds, Homebrew among them.
var boostContextNames = []string{"boost_context", "boost_context-mt"}

const (
	// sdkPathPrefix roots the macOS command line tools SDKs. Headers under
	// it must be injected with -isysroot rather than -I, plain -I breaks
	// compilation on macOS Catalina and later.
	sdkPathPrefix = "/Library/Developer/CommandLineTools/SDKs"

	// sdkIncludeSuffix is the trailing path pair identifying an SDK system
	// header directory.
	sdkIncludeSuffix = "usr/include"
)
