package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/javi11/ustarlist"
)

// This example extracts every regular file of a ustar archive into an output
// directory, reading content in bounded chunks through ReadAt. Symlink
// entries are materialized as copies of their resolved target.
func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <archive>.tar <output-dir>", os.Args[0])
	}
	archivePath := os.Args[1]
	outDir := os.Args[2]

	a, closer, err := ustarlist.Open(archivePath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer func() { _ = closer.Close() }()

	if _, err := a.Check(); err != nil {
		log.Fatalf("invalid archive: %v", err)
	}

	entries, err := a.Entries()
	if err != nil {
		log.Fatalf("list entries: %v", err)
	}

	buf := make([]byte, 64*1024)
	for _, e := range entries {
		outPath := filepath.Join(outDir, filepath.FromSlash(e.Name))
		switch {
		case e.IsDir():
			if err := os.MkdirAll(outPath, 0o755); err != nil {
				log.Fatalf("create dir %s: %v", outPath, err)
			}
		case e.IsRegular(), e.IsSymlink():
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				log.Fatalf("create dir for %s: %v", outPath, err)
			}
			if err := extractFile(a, e.Name, outPath, buf); err != nil {
				log.Printf("skip %s: %v", e.Name, err)
			}
		default:
			fmt.Printf("Skipping %s (unsupported type %q)\n", e.Name, byte(e.Type))
		}
	}
}

func extractFile(a *ustarlist.Archive, name, outPath string, buf []byte) error {
	outF, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := outF.Close(); cerr != nil {
			log.Printf("close %s: %v", outPath, cerr)
		}
	}()

	var offset int64
	for {
		n, remaining, err := a.ReadAt(name, offset, buf)
		if err != nil {
			// Empty files report the zero offset as out of range.
			if offset == 0 && errors.Is(err, ustarlist.ErrOffsetOutOfRange) {
				return nil
			}
			return err
		}
		if _, err := outF.Write(buf[:n]); err != nil {
			return err
		}
		offset += int64(n)
		if remaining == 0 {
			fmt.Printf("Extracted %s (%d bytes)\n", name, offset)
			return nil
		}
	}
}
