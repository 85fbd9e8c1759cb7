// Package nanoid generates compact random identifiers.
package nanoid

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16

	lowercase      = "abcdefghijklmnopqrstuvwxyz"
	uppercase      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	number         = "0123456789"
	numLowerUpper  = number + lowercase + uppercase
	primaryKeySize = 11
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// Must generate optional length nanoid
func Must(l ...int) string {
	return gonanoid.Must(getSize(l...))
}

// String generate optional length nanoid over the alphanumeric alphabet
func String(l ...int) string {
	return gonanoid.MustGenerate(numLowerUpper, getSize(l...))
}

// Lower generate optional length lowercase nanoid
func Lower(l ...int) string {
	return gonanoid.MustGenerate(lowercase+number, getSize(l...))
}

// PrimaryKey generate primary key
func PrimaryKey(l ...int) func() string {
	size := primaryKeySize
	if len(l) > 0 {
		size = l[0]
	}
	return func() string {
		return gonanoid.MustGenerate(numLowerUpper, size)
	}
}

// IsPrimaryKey verifies a candidate identifier's shape.
func IsPrimaryKey(id string) bool {
	if len(id) < 9 || len(id) > 21 {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(numLowerUpper, r) {
			return false
		}
	}
	return true
}
