//go:build !unix

package dumpfile

func mapFile(path string) ([]byte, func() error, error) {
	return readFile(path)
}
