package assets

import (
	"fmt"
	"io/fs"
)

// LoadShader reads a GLSL source from fsys as a null-terminated string
// ready for gl.Strs.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
