package emit

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"slices"

	"golang.org/x/tools/imports"
)

// Formatter post-processes a written artifact in place.
type Formatter interface {
	Format(path string) error
}

// GoImports formats the file in-process with golang.org/x/tools/imports.
type GoImports struct{}

func (GoImports) Format(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := imports.Process(path, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return err
	}
	if bytes.Equal(out, src) {
		return nil
	}
	return writeFile(path, out)
}

// Command runs an external formatter with the file path appended to Args,
// e.g. Command{Name: "gofmt", Args: []string{"-w"}}.
type Command struct {
	Name string
	Args []string
}

func (c Command) Format(path string) error {
	cmd := exec.Command(c.Name, append(slices.Clone(c.Args), path)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", c.Name, err, bytes.TrimSpace(out))
	}
	return nil
}

type Nop struct{}

func (Nop) Format(string) error { return nil }

// NewFormatter resolves a formatter by its config name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "goimports":
		return GoImports{}, nil
	case "gofmt":
		return Command{Name: "gofmt", Args: []string{"-w"}}, nil
	case "none", "":
		return Nop{}, nil
	}
	return nil, fmt.Errorf("unknown formatter: %s", name)
}
