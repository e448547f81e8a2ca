// Package emit serializes a generated table into a Go source file.
//
// The file is assembled from independent sections (header, constants,
// array) instead of a text template, written atomically and then handed to
// an optional Formatter.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/tanlut/internal/config"
	"github.com/san-kum/tanlut/internal/lut"
)

// ValuesPerRow is the number of table values on each line of the array literal.
const ValuesPerRow = 8

type Artifact struct {
	Package string
	Tool    string
	Table   *lut.Table
}

func NewArtifact(cfg config.Config, t *lut.Table) Artifact {
	return Artifact{Package: cfg.Package, Tool: cfg.Tool, Table: t}
}

// Header marks the file as generated, following the Go convention
// recognised by gofmt, linters and code review tools.
func Header(tool string) string {
	return fmt.Sprintf("// Code generated by %s; DO NOT EDIT.\n", tool)
}

func Constants(meta lut.Metadata) string {
	var b strings.Builder
	b.WriteString("// TanLUTLength is the number of table entries.\n")
	fmt.Fprintf(&b, "const TanLUTLength = %d\n\n", meta.Entries)
	b.WriteString("// TanLUTFracBits is the number of fractional bits used in table values.\n")
	fmt.Fprintf(&b, "const TanLUTFracBits uint8 = %d\n", meta.FracBits)
	return b.String()
}

// Rows splits values into comma separated lines of at most perRow values.
func Rows(values []int64, perRow int) []string {
	rows := make([]string, 0, (len(values)+perRow-1)/perRow)
	for start := 0; start < len(values); start += perRow {
		end := min(start+perRow, len(values))
		parts := make([]string, 0, end-start)
		for _, v := range values[start:end] {
			parts = append(parts, strconv.FormatInt(v, 10))
		}
		rows = append(rows, strings.Join(parts, ", "))
	}
	return rows
}

func Array(t *lut.Table) string {
	var b strings.Builder
	b.WriteString("// TanLUT holds tan(x) for x = i/TanLUTLength * π/2, i in [0, TanLUTLength).\n")
	fmt.Fprintf(&b, "var TanLUT = [TanLUTLength]int%d{\n", t.Meta.TotalBits)
	rows := Rows(t.Values, ValuesPerRow)
	if len(rows) > 0 {
		b.WriteString("\t")
		b.WriteString(strings.Join(rows, ",\n\t"))
		b.WriteString(",\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func Render(a Artifact) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header(a.Tool))
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "package %s\n\n", a.Package)
	buf.WriteString(Constants(a.Table.Meta))
	buf.WriteString("\n")
	buf.WriteString(Array(a.Table))
	return buf.Bytes()
}

type Emitter struct {
	Formatter Formatter
	Logger    *log.Logger
}

func New(f Formatter, logger *log.Logger) *Emitter {
	if f == nil {
		f = Nop{}
	}
	if logger == nil {
		logger = log.New(os.Stderr, "tanlut: ", 0)
	}
	return &Emitter{Formatter: f, Logger: logger}
}

// Emit writes the artifact to path, replacing any previous file, then runs
// the formatter. Only filesystem errors are returned; formatter failures are
// logged.
func (e *Emitter) Emit(a Artifact, path string) error {
	if err := writeFile(path, Render(a)); err != nil {
		return err
	}

	if e.Formatter != nil {
		if err := e.Formatter.Format(path); err != nil {
			e.Logger.Printf("warning: formatting %s failed: %v", path, err)
		}
	}
	return nil
}

// writeFile replaces path through a temporary file in the same directory, so
// readers see either the old or the new content.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return &IOError{Op: "open", Path: path, Err: errors.New("is a directory")}
		}
		if info.Mode().Perm()&0200 == 0 {
			return &IOError{Op: "open", Path: path, Err: fs.ErrPermission}
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	name := tmp.Name()

	fail := func(op string, err error) error {
		tmp.Close()
		os.Remove(name)
		return &IOError{Op: op, Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
