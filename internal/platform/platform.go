// Package platform resolves the host operating system and architecture to
// the identifier of the matching embedded thrift compiler binary.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrUnsupportedPlatform is returned for platform names with no
	// embedded compiler build.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedArch is returned for architectures with no embedded
	// compiler build.
	ErrUnsupportedArch = errors.New("unsupported architecture")
)

// osNames maps reported platform names to the short name used in
// executable identifiers.
var osNames = map[string]string{
	"Mac OS X": "osx",
	"Linux":    "linux",
	"FreeBSD":  "bsd",
	"OpenBSD":  "bsd",
}

// archNames maps reported architectures to the word size suffix used in
// executable identifiers.
var archNames = map[string]string{
	"amd64":  "64",
	"x86_64": "64",
	"x86":    "32",
	"i386":   "32",
	"i486":   "32",
	"i586":   "32",
	"i686":   "32",
}

// ResolveExecutable maps a platform name and architecture to the
// identifier of the embedded thrift binary for the given tool version.
//
// Windows-family names resolve to a single .exe identifier regardless of
// architecture. All other names must appear in the fixed platform table,
// and the architecture in the fixed architecture table; unknown values
// fail with ErrUnsupportedPlatform or ErrUnsupportedArch.
func ResolveExecutable(platformName, arch, version string) (string, error) {
	if strings.HasPrefix(platformName, "Windows") {
		return fmt.Sprintf("thrift-%s.exe", version), nil
	}

	osName, ok := osNames[platformName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platformName)
	}

	archName, ok := archNames[arch]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedArch, arch)
	}

	return fmt.Sprintf("thrift-%s-%s%s", version, osName, archName), nil
}

// goosNames maps runtime.GOOS to the platform names in the fixed table.
var goosNames = map[string]string{
	"linux":   "Linux",
	"darwin":  "Mac OS X",
	"windows": "Windows",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
}

// goarchNames maps runtime.GOARCH to the architecture names in the
// fixed table.
var goarchNames = map[string]string{
	"amd64": "amd64",
	"386":   "i386",
}

// Host reports the running platform and architecture in the form the
// resolver tables expect. Unknown values are passed through unchanged so
// that ResolveExecutable reports them in its error.
func Host() (platformName, arch string) {
	platformName, ok := goosNames[runtime.GOOS]
	if !ok {
		platformName = runtime.GOOS
	}
	arch, ok = goarchNames[runtime.GOARCH]
	if !ok {
		arch = runtime.GOARCH
	}
	return platformName, arch
}
