//go:build !darwin && !linux && !freebsd

package regdump

func hostRelease() (string, string) {
	return "", ""
}
