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

package archivefs_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/archivefs"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

// writeZip creates a zip file containing the files in the map
func writeZip(t *testing.T, filename string, files map[string]string) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(content))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
}

func TestIsArchive(t *testing.T) {
	test.ExpectEquality(t, archivefs.IsArchive("roms.zip"), true)
	test.ExpectEquality(t, archivefs.IsArchive("ROMS.ZIP"), true)
	test.ExpectEquality(t, archivefs.IsArchive("game.nes"), false)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.nes")
	test.DemandSuccess(t, os.WriteFile(plain, []byte("plain"), 0o600))

	data, err := archivefs.ReadFile(plain)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "plain")

	_, err = archivefs.ReadFile(filepath.Join(dir, "missing.nes"))
	test.ExpectFailure(t, err)

	zf := filepath.Join(dir, "roms.zip")
	writeZip(t, zf, map[string]string{
		"readme.txt":    "readme",
		"mmc3/b.nes":    "b",
		"mmc3/a.NES":    "a",
		"nrom/game.nes": "game",
	})

	data, err = archivefs.ReadFile(filepath.Join(zf, "nrom", "game.nes"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "game")

	data, err = archivefs.ReadFile(filepath.Join(zf, "readme.txt"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "readme")

	// the first file with a matching extension
	data, err = archivefs.ReadFile(zf, ".nes")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "a")

	_, err = archivefs.ReadFile(zf, ".fds")
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))

	_, err = archivefs.ReadFile(filepath.Join(zf, "nrom", "missing.nes"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))
}
