// pkg/folly/probe.go
package folly

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pcwalton/find-folly/pkg/pkgconf"
	"github.com/pcwalton/find-folly/pkg/platform"
)

// Probe runs the full discovery sequence and returns the located library.
// Directives are delivered to the configured sink as parsing proceeds, so a
// failed probe may already have emitted some. The sequence stops at the
// first error; there are no retries and no partial results.
func (p *Prober) Probe(ctx context.Context) (*Library, error) {
	if err := p.resolveAuxiliary(ctx); err != nil {
		return nil, err
	}

	lib := &Library{}
	if err := p.resolveLinkFlags(ctx, lib); err != nil {
		return nil, err
	}
	if err := p.resolveBoostContext(lib); err != nil {
		return nil, err
	}
	if err := p.resolveCompileFlags(ctx, lib); err != nil {
		return nil, err
	}
	return lib, nil
}

// resolveAuxiliary locates the dependencies Folly's .pc file forgets to
// declare. These carry complete metadata of their own, so the standard
// resolution path suffices, and any failure is fatal.
func (p *Prober) resolveAuxiliary(ctx context.Context) error {
	for _, name := range []string{fmtPackage, gflagsPackage} {
		p.logger.WithField("package", name).Debug("probing auxiliary dependency")
		if err := p.tool.Probe(ctx, name, true, p.sink); err != nil {
			return &DependencyError{Name: name, Err: err}
		}
	}
	return nil
}

// resolveLinkFlags queries libfolly's static link line and splits it into
// directives. pkg-config itself cannot be trusted here: some installs list
// raw library files instead of -l flags, so the output is parsed by hand.
func (p *Prober) resolveLinkFlags(ctx context.Context, lib *Library) error {
	out, err := p.tool.Libs(ctx, mainPackage, true)
	switch {
	case err == nil:
	case pkgconf.IsExitError(err):
		// A broken .pc file can make pkg-config exit non-zero while still
		// printing usable flags. Keep whatever it produced.
		p.logger.WithError(err).Warn("pkg-config exited non-zero for libfolly libs; using its output anyway")
	default:
		return &PkgConfigError{Err: err}
	}

	words, err := pkgconf.ShellWords(out)
	if err != nil {
		return &ParseError{Output: out, Err: err}
	}

	for _, word := range words {
		if strings.HasPrefix(word, "-") {
			switch {
			case strings.HasPrefix(word, "-L"):
				// Recorded, not emitted: the boost_context pass emits a
				// search directive for every recorded directory.
				lib.LibDirs = append(lib.LibDirs, strings.TrimPrefix(word, "-L"))
			case strings.HasPrefix(word, "-l"):
				p.sink.AddLib(strings.TrimPrefix(word, "-l"))
			}
			continue
		}
		p.linkRawLibraryFile(word)
	}
	return nil
}

// linkRawLibraryFile turns a bare library file path from the link line into
// directives: /opt/folly/lib/libdouble-conversion.a becomes a search
// directive for /opt/folly/lib plus a link directive for double-conversion.
// Tokens not shaped like a library file are skipped.
func (p *Prober) linkRawLibraryFile(path string) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name, ok := strings.CutPrefix(stem, platform.LibPrefix)
	if !ok {
		return
	}
	p.sink.AddSearchDir(filepath.Dir(path))
	p.sink.AddLib(name)
}

// resolveBoostContext emits a search directive for every known library
// directory and links whichever boost_context variant turns up first.
// Folly's .pc file never mentions boost_context and the basename varies
// across systems, so the archive is located by looking at the filesystem,
// assuming it sits alongside the Folly installation.
func (p *Prober) resolveBoostContext(lib *Library) error {
	dirs := make([]string, 0, len(lib.LibDirs)+len(p.extraLibDirs))
	dirs = append(dirs, lib.LibDirs...)
	dirs = append(dirs, p.extraLibDirs...)

	found := false
	for _, dir := range dirs {
		p.sink.AddSearchDir(dir)
		if found {
			continue
		}
		for _, name := range boostContextNames {
			candidate := filepath.Join(dir, platform.StaticLibFileName(name))
			if ok, err := afero.Exists(p.fs, candidate); err != nil || !ok {
				continue
			}
			p.logger.WithField("path", candidate).Debug("found boost_context")
			p.sink.AddLib(name)
			found = true
			break
		}
	}
	if !found {
		return ErrBoostContextNotFound
	}
	return nil
}

// FindBoostContextArchive returns the path of the first boost_context
// static library present in dirs, trying the same basenames in the same
// order the probe links with.
func FindBoostContextArchive(fs afero.Fs, dirs []string) (string, bool) {
	for _, dir := range dirs {
		for _, name := range boostContextNames {
			candidate := filepath.Join(dir, platform.StaticLibFileName(name))
			if ok, err := afero.Exists(fs, candidate); err == nil && ok {
				return candidate, true
			}
		}
	}
	return "", false
}

// resolveCompileFlags queries libfolly's compile flags and collects the -I
// directories, rewriting macOS SDK header directories to -isysroot flags.
// Compile flags never carry quoted paths in practice, so a plain whitespace
// split is used rather than shell tokenization.
func (p *Prober) resolveCompileFlags(ctx context.Context, lib *Library) error {
	out, err := p.tool.Cflags(ctx, mainPackage, true)
	switch {
	case err == nil:
	case pkgconf.IsExitError(err):
		p.logger.WithError(err).Warn("pkg-config exited non-zero for libfolly cflags; using its output anyway")
	default:
		return &PkgConfigError{Err: err}
	}

	for _, word := range strings.Fields(out) {
		include, ok := strings.CutPrefix(word, "-I")
		if !ok {
			continue
		}
		if sysroot, ok := sdkSysroot(include); ok {
			lib.OtherCflags = append(lib.OtherCflags, "-isysroot", sysroot)
		} else {
			lib.IncludePaths = append(lib.IncludePaths, include)
		}
	}
	return nil
}

// sdkSysroot reports whether include is a macOS command line tools SDK
// header directory and, if so, the SDK root to pass via -isysroot. The root
// is the directory two levels up, above the trailing usr/include pair.
func sdkSysroot(include string) (string, bool) {
	if !hasPathPrefix(include, sdkPathPrefix) || !hasPathSuffix(include, sdkIncludeSuffix) {
		return "", false
	}
	return filepath.Dir(filepath.Dir(include)), true
}

// hasPathPrefix reports whether path starts with prefix on a whole-component
// boundary.
func hasPathPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// hasPathSuffix reports whether path ends with suffix on a whole-component
// boundary.
func hasPathSuffix(path, suffix string) bool {
	return path == suffix || strings.HasSuffix(path, "/"+suffix)
}
