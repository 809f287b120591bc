package outfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteGeneratedFile writes src to outPath, always overwriting any existing
// file. The content is written to a temporary file in the same directory and
// renamed into place, so readers never observe a partial write.
func WriteGeneratedFile(outPath string, src []byte) error {
	return writeAtomic(outPath, src, 0o644)
}

// ReplaceRange replaces the bytes [start, end) of the file at path with text.
func ReplaceRange(path string, start, end int, text string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if start < 0 || end < start || end > len(b) {
		return fmt.Errorf("range %d:%d out of bounds for %s (%d bytes)", start, end, path, len(b))
	}
	out := make([]byte, 0, len(b)-(end-start)+len(text))
	out = append(out, b[:start]...)
	out = append(out, text...)
	out = append(out, b[end:]...)
	return writeAtomic(path, out, st.Mode().Perm())
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
