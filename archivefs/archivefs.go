// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

// Package archivefs reads files that may be inside a zip archive. A path can
// pass through an archive as though it were a directory:
//
//	roms/collection.zip/mmc3/game.nes
//
// If the path ends at the archive then the archive must contain a file with
// one of the extensions given to ReadFile().
package archivefs

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// NotFound is returned by ReadFile() when the archive exists but the file
// cannot be found inside it.
const NotFound = "archivefs: %s not found in %s"

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(filename string) bool {
	return slices.Contains(ArchiveExtensions[:], strings.ToUpper(filepath.Ext(filename)))
}

// split the filename into the path to an archive and the path inside the
// archive. the archive must exist for the split to succeed
func split(filename string) (string, string, bool) {
	lst := strings.Split(filepath.ToSlash(filepath.Clean(filename)), "/")
	for i := range lst {
		p := strings.Join(lst[:i+1], "/")
		if !IsArchive(p) {
			continue
		}
		if fi, err := os.Stat(filepath.FromSlash(p)); err == nil && !fi.IsDir() {
			return filepath.FromSlash(p), strings.Join(lst[i+1:], "/"), true
		}
	}
	return "", "", false
}

// ReadFile returns the contents of the named file. If the filename ends at an
// archive then the first file in the archive with one of the extensions is
// read. Extensions are compared without regard to case.
func ReadFile(filename string, extensions ...string) ([]byte, error) {
	archive, inArchive, ok := split(filename)
	if !ok {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		return data, nil
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer zr.Close()

	if inArchive == "" {
		inArchive = find(&zr.Reader, extensions)
		if inArchive == "" {
			return nil, curated.Errorf(NotFound, strings.Join(extensions, "/"), archive)
		}
	}

	f, err := zr.Open(inArchive)
	if err != nil {
		return nil, curated.Errorf(NotFound, inArchive, archive)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	return data, nil
}

// find the first file in the archive with one of the extensions. files are
// considered in alphabetical order
func find(zr *zip.Reader, extensions []string) string {
	var names []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		ext := strings.ToUpper(path.Ext(f.Name))
		if slices.ContainsFunc(extensions, func(e string) bool {
			return strings.ToUpper(e) == ext
		}) {
			names = append(names, f.Name)
		}
	}

	if len(names) == 0 {
		return ""
	}

	slices.Sort(names)
	return names[0]
}
