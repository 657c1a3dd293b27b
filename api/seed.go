package api

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	dbfs "github.com/codesumanr/portfolio-api/db"
)

// mustLoadSeed decodes one of the embedded seed fixtures. The files ship
// inside the binary, so a failure here is a build defect and panics.
func mustLoadSeed[T any](name string) []T {
	b, err := fs.ReadFile(dbfs.SeedFiles, path.Join("seed", name))
	if err != nil {
		panic(fmt.Sprintf("read seed %s: %v", name, err))
	}

	var docs []T
	if err := json.Unmarshal(b, &docs); err != nil {
		panic(fmt.Sprintf("decode seed %s: %v", name, err))
	}
	return docs
}
