package filesystem

import (
	"os"

	"clip-cutter/domain/clip"
)

// Checker implements clip.FileChecker and clip.FileRemover using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if anything is present at path. An entry that cannot be
// stat'ed for a reason other than absence counts as present so it is never
// picked as an output name.
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// Remove deletes the file at path
func (c *Checker) Remove(path string) error {
	return os.Remove(path)
}

var (
	_ clip.FileChecker = (*Checker)(nil)
	_ clip.FileRemover = (*Checker)(nil)
)
