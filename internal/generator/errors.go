package generator

import "fmt"

// DirectoryAccessError reports a permission failure while creating the
// output directory.
type DirectoryAccessError struct {
	Path string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("permission denied: cannot create output directory %s", e.Path)
}

func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// DirectoryCreationError reports a non-permission failure while creating
// the output directory.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("cannot create output directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a permission failure while writing a document.
type FileAccessError struct {
	Dir string
	Err error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("permission denied writing files to %s: %v", e.Dir, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// FileWriteError reports a non-permission failure while writing a document.
type FileWriteError struct {
	Dir string
	Err error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("error writing files to %s: %v", e.Dir, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}
