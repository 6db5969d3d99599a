// Package regdump runs lsregister and exposes its dump as a stream.
package regdump

import (
	"strconv"
	"strings"
)

const (
	// DumpFlag asks lsregister to print the whole database.
	DumpFlag = "-dump"

	// LegacyLSRegister is where lsregister lived up to Mac OS X 10.4.
	LegacyLSRegister = "/System/Library/Frameworks/ApplicationServices.framework/Versions/A/Frameworks/LaunchServices.framework/Versions/A/Support/lsregister"

	// LSRegister is the location from Mac OS X 10.5 onwards.
	LSRegister = "/System/Library/Frameworks/CoreServices.framework/Versions/A/Frameworks/LaunchServices.framework/Versions/A/Support/lsregister"

	// firstCoreServicesRelease is the Darwin major version of Mac OS X 10.5.
	firstCoreServicesRelease = 9
)

// ResolveCommand returns the argv that dumps the Launch Services database on
// this host.
func ResolveCommand() []string {
	sysname, release := hostRelease()
	return commandForRelease(sysname, release)
}

// commandForRelease picks the lsregister path from a kernel name and release
// string as reported by uname(3), e.g. "Darwin" and "8.11.1".
func commandForRelease(sysname, release string) []string {
	if sysname == "Darwin" {
		if major, ok := majorVersion(release); ok && major < firstCoreServicesRelease {
			return []string{LegacyLSRegister, DumpFlag}
		}
	}
	return []string{LSRegister, DumpFlag}
}

func majorVersion(release string) (int, bool) {
	head, _, _ := strings.Cut(release, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return n, true
}
