package badger

import "fmt"

// Key prefixes for different data types
const (
	blobContentPrefix = "blobcnt"
	blobInfoPrefix    = "blobinf"
	containerPrefix   = "blobctr"
)

// makeBlobContentKey generates the key for a blob's raw content.
func makeBlobContentKey(container, name string) []byte {
	return []byte(fmt.Sprintf("%s:%s/%s", blobContentPrefix, container, name))
}

// makeBlobInfoKey generates the key for a blob's serialized info.
func makeBlobInfoKey(container, name string) []byte {
	return []byte(fmt.Sprintf("%s:%s/%s", blobInfoPrefix, container, name))
}

// makeContainerKey generates the marker key for a container.
func makeContainerKey(container string) []byte {
	return []byte(fmt.Sprintf("%s:%s", containerPrefix, container))
}

// makeBlobInfoScanPrefix generates the iteration prefix for all blob infos
// in a container.
func makeBlobInfoScanPrefix(container string) []byte {
	return []byte(fmt.Sprintf("%s:%s/", blobInfoPrefix, container))
}
