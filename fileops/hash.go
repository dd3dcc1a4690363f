package fileops

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// hashChunkSize is the read size used when streaming a file through a
// digest. Memory use stays bounded regardless of file size.
const hashChunkSize = 4096

// Algorithm selects the digest used by Hash and HashFile. The set is closed:
// values outside the four constants are rejected by ParseAlgorithm.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// digests is the fixed dispatch table from algorithm to constructor.
var digests = map[Algorithm]func() hash.Hash{
	MD5:    md5.New,
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA512: sha512.New,
}

// ParseAlgorithm maps an --algorithm flag value onto the Algorithm set.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(s))
	if _, ok := digests[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return a, nil
}

// Hash streams r through the selected digest in fixed-size chunks and
// returns the lowercase hex digest. A read failure aborts with an error; a
// partial digest is never reported as valid.
func Hash(r io.Reader, alg Algorithm) (string, error) {
	newHash, ok := digests[alg]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	h := newHash()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile hashes the regular file at path and returns the hex digest.
func HashFile(path string, alg Algorithm) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest, err := Hash(file, alg)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return digest, nil
}
