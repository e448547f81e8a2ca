package emit_test

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tanlut/internal/config"
	"github.com/san-kum/tanlut/internal/emit"
	"github.com/san-kum/tanlut/internal/lut"
	"github.com/san-kum/tanlut/internal/tanlut"
)

type failingFormatter struct{}

func (failingFormatter) Format(string) error { return errors.New("formatter exploded") }

func defaultArtifact() emit.Artifact {
	cfg := config.DefaultConfig()
	tab, err := lut.Generate(cfg)
	Expect(err).NotTo(HaveOccurred())
	return emit.NewArtifact(cfg, tab)
}

func tempDir() string {
	dir, err := os.MkdirTemp("", "emit-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)
	return dir
}

var _ = Describe("Sections", func() {
	It("names the generating tool in the header", func() {
		Expect(emit.Header("cmd/tanlut")).To(Equal("// Code generated by cmd/tanlut; DO NOT EDIT.\n"))
	})

	It("declares entry count and fractional bits", func() {
		out := emit.Constants(lut.Metadata{Entries: 32, FracBits: 16, TotalBits: 32})
		Expect(out).To(ContainSubstring("const TanLUTLength = 32\n"))
		Expect(out).To(ContainSubstring("const TanLUTFracBits uint8 = 16\n"))
	})

	It("groups values in rows of eight", func() {
		values := make([]int64, 20)
		for i := range values {
			values[i] = int64(i)
		}
		rows := emit.Rows(values, emit.ValuesPerRow)
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal("0, 1, 2, 3, 4, 5, 6, 7"))
		Expect(rows[2]).To(Equal("16, 17, 18, 19"))
	})

	It("uses the element type of the word width", func() {
		tab := &lut.Table{Meta: lut.Metadata{Entries: 2, FracBits: 4, TotalBits: 16}, Values: []int64{0, 5}}
		Expect(emit.Array(tab)).To(Equal("// TanLUT holds tan(x) for x = i/TanLUTLength * π/2, i in [0, TanLUTLength).\n" +
			"var TanLUT = [TanLUTLength]int16{\n\t0, 5,\n}\n"))
	})
})

var _ = Describe("Render", func() {
	It("lays out the default artifact", func() {
		src := string(emit.Render(defaultArtifact()))

		Expect(src).To(HavePrefix("// Code generated by cmd/tanlut; DO NOT EDIT.\n\npackage tanlut\n"))
		Expect(src).To(ContainSubstring("\t0, 3219, 6454, 9721, 13035, 16415, 19880, 23449,\n"))
		Expect(src).To(ContainSubstring("\t65536, 72307, 79855, 88365, 98081, 109340, 122609, 138564,\n"))
		Expect(strings.Count(src, "\n\t")).To(Equal(tanlut.TanLUTLength / emit.ValuesPerRow))
		Expect(src).To(HaveSuffix(",\n}\n"))
	})

	It("reproduces the checked-in artifact byte for byte", func() {
		onDisk, err := os.ReadFile(filepath.Join("..", "tanlut", config.DefaultOutput))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(emit.Render(defaultArtifact()))).To(Equal(string(onDisk)))
	})

	It("is byte-identical across runs", func() {
		Expect(emit.Render(defaultArtifact())).To(Equal(emit.Render(defaultArtifact())))
	})
})

var _ = Describe("Emitter", func() {
	var (
		logs    *bytes.Buffer
		emitter *emit.Emitter
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		emitter = emit.New(emit.Nop{}, log.New(logs, "", 0))
	})

	It("creates missing parent directories", func() {
		path := filepath.Join(tempDir(), "a", "b", "tan_lut.go")

		Expect(emitter.Emit(defaultArtifact(), path)).To(Succeed())

		info, err := os.Stat(filepath.Dir(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
		Expect(info.Mode().Perm() &^ 0775).To(BeZero())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(emit.Render(defaultArtifact())))
	})

	It("overwrites an existing file and leaves no temporary files", func() {
		dir := tempDir()
		path := filepath.Join(dir, "tan_lut.go")
		Expect(os.WriteFile(path, []byte("stale content that is longer than nothing"), 0644)).To(Succeed())

		Expect(emitter.Emit(defaultArtifact(), path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(emit.Render(defaultArtifact())))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("returns an IOError when the parent is a regular file", func() {
		dir := tempDir()
		blocker := filepath.Join(dir, "blocker")
		Expect(os.WriteFile(blocker, nil, 0644)).To(Succeed())

		err := emitter.Emit(defaultArtifact(), filepath.Join(blocker, "tan_lut.go"))
		Expect(err).To(MatchError(emit.ErrIO))

		var ioErr *emit.IOError
		Expect(errors.As(err, &ioErr)).To(BeTrue())
		Expect(ioErr.Op).To(Equal("mkdir"))
	})

	It("refuses a read-only destination and keeps the previous artifact", func() {
		dir := tempDir()
		path := filepath.Join(dir, "tan_lut.go")
		previous := []byte("// previous artifact\n")
		Expect(os.WriteFile(path, previous, 0444)).To(Succeed())

		err := emitter.Emit(defaultArtifact(), path)
		Expect(err).To(MatchError(emit.ErrIO))
		Expect(errors.Is(err, fs.ErrPermission)).To(BeTrue())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(previous))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("fails without writing into a read-only directory", func() {
		if os.Geteuid() == 0 {
			Skip("permission bits are not enforced for root")
		}
		dir := tempDir()
		Expect(os.Chmod(dir, 0555)).To(Succeed())
		DeferCleanup(os.Chmod, dir, os.FileMode(0755))

		err := emitter.Emit(defaultArtifact(), filepath.Join(dir, "tan_lut.go"))
		Expect(err).To(MatchError(emit.ErrIO))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("logs formatter failures without failing", func() {
		emitter = emit.New(failingFormatter{}, log.New(logs, "", 0))
		path := filepath.Join(tempDir(), "tan_lut.go")

		Expect(emitter.Emit(defaultArtifact(), path)).To(Succeed())
		Expect(logs.String()).To(ContainSubstring("formatter exploded"))
		Expect(path).To(BeAnExistingFile())
	})
})

var _ = Describe("Formatters", func() {
	It("leaves rendered output unchanged under goimports", func() {
		path := filepath.Join(tempDir(), "tan_lut.go")
		src := emit.Render(defaultArtifact())
		Expect(os.WriteFile(path, src, 0644)).To(Succeed())

		Expect(emit.GoImports{}.Format(path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(src))
	})

	It("rewrites badly formatted source", func() {
		path := filepath.Join(tempDir(), "x.go")
		Expect(os.WriteFile(path, []byte("package x\nconst   A=1\n"), 0644)).To(Succeed())

		Expect(emit.GoImports{}.Format(path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("package x\n\nconst A = 1\n"))
	})

	It("reports a failing external command", func() {
		if _, err := exec.LookPath("false"); err != nil {
			Skip("false not available")
		}
		Expect(emit.Command{Name: "false"}.Format("unused")).NotTo(Succeed())
	})

	It("resolves formatters by name", func() {
		for _, name := range []string{"goimports", "gofmt", "none", ""} {
			_, err := emit.NewFormatter(name)
			Expect(err).NotTo(HaveOccurred())
		}
		_, err := emit.NewFormatter("rustfmt")
		Expect(err).To(HaveOccurred())
	})
})
