package scanner_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardflip/internal/scanner"
	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

type fakeImporter struct {
	cards map[string][]*models.Card
	fail  map[string]error
	calls []string
}

func (f *fakeImporter) ImportPDF(ctx context.Context, pdfPath string) ([]*models.Card, error) {
	f.calls = append(f.calls, pdfPath)
	if err := f.fail[filepath.Base(pdfPath)]; err != nil {
		return nil, err
	}
	return f.cards[filepath.Base(pdfPath)], nil
}

var _ = Describe("Scanner", func() {
	var (
		testDir    string
		testLogger *logger.Logger
		ctx        context.Context
	)

	writePDF := func(path string) {
		err := os.WriteFile(path, []byte("dummy pdf content"), 0644)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "scanner-test-*")
		Expect(err).NotTo(HaveOccurred())

		testLogger = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[test] "))
		testLogger.SetLevel(logger.LevelTrace)
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	Context("when scanning an empty directory", func() {
		It("should return an error", func() {
			s := scanner.New(testLogger)
			_, err := s.FindPDFs(ctx, testDir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no PDF files found"))
		})
	})

	Context("when scanning a directory with PDFs", func() {
		BeforeEach(func() {
			for i := 1; i <= 3; i++ {
				writePDF(filepath.Join(testDir, fmt.Sprintf("test%d.pdf", i)))
			}
			writePDF(filepath.Join(testDir, "upper.PDF"))

			err := os.WriteFile(filepath.Join(testDir, "test.txt"), []byte("text file"), 0644)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should find only PDF files", func() {
			s := scanner.New(testLogger)
			pdfs, err := s.FindPDFs(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(pdfs).To(HaveLen(4))

			for _, pdf := range pdfs {
				Expect(filepath.IsAbs(pdf.AbsolutePath)).To(BeTrue())
				Expect(filepath.Ext(pdf.RelativePath)).To(BeElementOf(".pdf", ".PDF"))
			}
		})
	})

	Context("when scanning nested directories", func() {
		BeforeEach(func() {
			nestedDir := filepath.Join(testDir, "nested")
			Expect(os.MkdirAll(nestedDir, 0755)).To(Succeed())

			writePDF(filepath.Join(testDir, "root.pdf"))
			writePDF(filepath.Join(nestedDir, "nested.pdf"))
		})

		It("should find PDFs in all subdirectories", func() {
			s := scanner.New(testLogger)
			pdfs, err := s.FindPDFs(ctx, testDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(pdfs).To(HaveLen(2))

			var relPaths []string
			for _, pdf := range pdfs {
				relPaths = append(relPaths, pdf.RelativePath)
			}
			Expect(relPaths).To(ConsistOf("root.pdf", filepath.Join("nested", "nested.pdf")))
		})
	})

	Context("when context is cancelled", func() {
		It("should stop scanning", func() {
			deepDir := filepath.Join(testDir, "deep", "deeper", "deepest")
			Expect(os.MkdirAll(deepDir, 0755)).To(Succeed())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			s := scanner.New(testLogger)
			_, err := s.FindPDFs(ctx, testDir)

			Expect(err).To(Equal(context.Canceled))
		})
	})

	Context("when importing a directory", func() {
		var importer *fakeImporter

		BeforeEach(func() {
			writePDF(filepath.Join(testDir, "good.pdf"))
			writePDF(filepath.Join(testDir, "broken.pdf"))
			writePDF(filepath.Join(testDir, "empty.pdf"))

			importer = &fakeImporter{
				cards: map[string][]*models.Card{
					"good.pdf": {
						models.NewCard("q1", "a1", models.Easy),
						models.NewCard("q2", "a2", models.Hard),
					},
				},
				fail: map[string]error{
					"broken.pdf": errors.New("failed to open PDF"),
				},
			}
		})

		It("should collect cards and skip PDFs that fail", func() {
			s := scanner.New(testLogger)
			cards, stats, err := s.ImportDirectory(ctx, testDir, importer)

			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(2))
			Expect(stats.PDFCount).To(Equal(3))
			Expect(stats.FailedCount).To(Equal(1))
			Expect(stats.CardCount).To(Equal(2))
			Expect(importer.calls).To(HaveLen(3))
		})

		It("should fail when the directory has no PDFs", func() {
			emptyDir, err := os.MkdirTemp("", "scanner-empty-*")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(emptyDir)

			s := scanner.New(testLogger)
			_, _, err = s.ImportDirectory(ctx, emptyDir, importer)

			Expect(err).To(HaveOccurred())
			Expect(importer.calls).To(BeEmpty())
		})
	})
})
