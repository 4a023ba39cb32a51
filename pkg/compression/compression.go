package compression

import (
	"path/filepath"
	"strings"
)

// Compressor defines a single compression scheme (such as XZ).
type Compressor interface {
	// Name is typically the name of a class.
	Name() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)
}

// CompressorFromPath returns a Compressor for a dump file based on its
// extension, or nil when the file is stored uncompressed.
func CompressorFromPath(path string) Compressor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return &XZ{}
	}
	return nil
}
