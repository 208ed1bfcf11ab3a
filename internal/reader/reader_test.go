// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func expectUnreadable(t *testing.T, err error, path string) {
	t.Helper()
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("Expected ErrUnreadable, got %v", err)
	}
	var fre *FileReaderError
	if !errors.As(err, &fre) {
		t.Fatalf("Expected *FileReaderError, got %T", err)
	}
	if fre.Path != path {
		t.Errorf("Expected path %q, got %q", path, fre.Path)
	}
}

func TestText_ReadsWholeFile(t *testing.T) {
	content := "line one\nline two\n"
	path := writeFile(t, "notes.txt", []byte(content))

	got, err := Text.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != content {
		t.Errorf("Expected %q, got %q", content, got)
	}
}

func TestText_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	got, err := Text.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty content, got %q", got)
	}
}

func TestText_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Text.Read(path)
	expectUnreadable(t, err, path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected cause to be os.ErrNotExist, got %v", err)
	}
}

func TestText_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "binary.bin", []byte{0xff, 0xfe, 0x00, 0xc3})

	_, err := Text.Read(path)
	expectUnreadable(t, err, path)
}

func TestForExtensions_SkipsOtherTypes(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello"))
	calls := 0
	r := ForExtensions(ReaderFunc(func(p string) (string, error) {
		calls++
		return "called", nil
	}), ".MD")

	_, err := r.Read(path)
	expectUnreadable(t, err, path)
	if calls != 0 {
		t.Errorf("Expected wrapped reader not to be called, got %d calls", calls)
	}

	mdPath := writeFile(t, "README.md", []byte("# hi"))
	got, err := r.Read(mdPath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != "called" {
		t.Errorf("Expected wrapped reader result, got %q", got)
	}
}

func TestHTML_StripsScriptsAndStyles(t *testing.T) {
	page := `<html><head><style>body { color: red; }</style><script>var x = 1;</script></head>
<body>
  <h1>Title</h1>
  <p>Some   paragraph	with  gaps</p>
  <noscript>enable js</noscript>
</body></html>`
	path := writeFile(t, "page.html", []byte(page))

	got, err := HTML.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != "Title\nSome paragraph with gaps" {
		t.Errorf("Unexpected text: %q", got)
	}
}

func TestHTML_NoText(t *testing.T) {
	path := writeFile(t, "blank.html", []byte("<html><body><script>1</script></body></html>"))

	_, err := HTML.Read(path)
	expectUnreadable(t, err, path)
}

func TestExcel_RendersRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Name", "Role"},
		{"Ada", "Engineer"},
		{"Grace"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "people.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	got, err := Excel.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	for _, want := range []string{
		"Sheet: Sheet1",
		"Row 2: Name: Ada, Role: Engineer",
		"Row 3: Name: Grace",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestExcel_NotAWorkbook(t *testing.T) {
	path := writeFile(t, "fake.xlsx", []byte("plain text"))

	_, err := Excel.Read(path)
	expectUnreadable(t, err, path)
}

func TestEmail_HeadersAndBody(t *testing.T) {
	eml := strings.Join([]string{
		"From: Ada Lovelace <ada@example.com>",
		"To: grace@example.com",
		"Subject: Engine notes",
		"Date: Mon, 02 Jan 2006 15:04:05 +0000",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"The engine weaves algebraic patterns.",
		"",
	}, "\r\n")
	path := writeFile(t, "note.eml", []byte(eml))

	got, err := Email.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	for _, want := range []string{
		"Subject: Engine notes",
		"Sender: Ada Lovelace <ada@example.com>",
		"The engine weaves algebraic patterns.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestEmail_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.eml")

	_, err := Email.Read(path)
	expectUnreadable(t, err, path)
}

func TestDOCX_NotADocument(t *testing.T) {
	path := writeFile(t, "fake.docx", []byte("plain text"))

	_, err := DOCX.Read(path)
	expectUnreadable(t, err, path)
}

func TestDocumentText_Paragraphs(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:t xml:space="preserve"> world</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second</w:t><w:tab/><w:t>line</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := documentText(content)
	if err != nil {
		t.Fatalf("documentText failed: %v", err)
	}
	if got != "Hello world\nSecond\tline" {
		t.Errorf("Unexpected text: %q", got)
	}
}

func TestPDF_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := PDF.Read(path)
	expectUnreadable(t, err, path)
}

func TestFileReaderError_Message(t *testing.T) {
	err := Unreadable("text", "a.txt", errors.New("boom"))
	if err.Error() != `unable to read file "a.txt": text: boom` {
		t.Errorf("Unexpected message: %q", err.Error())
	}

	aggregate := &FileReaderError{Path: "a.txt"}
	if aggregate.Error() != `unable to read file "a.txt"` {
		t.Errorf("Unexpected message: %q", aggregate.Error())
	}
}

func TestIsTemporaryFile(t *testing.T) {
	cases := map[string]bool{
		"~$report.docx":  true,
		"._notes.txt":    true,
		"download.tmp":   true,
		"report.docx":    false,
		"dir/~notes.txt": false,
		"/tmp/README.md": false,
	}
	for path, want := range cases {
		if got := IsTemporaryFile(path); got != want {
			t.Errorf("IsTemporaryFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestRowText_UnnamedColumns(t *testing.T) {
	got := rowText([]string{"Name", " ", "City"}, []string{"Ada", "42", "  "})
	if got != "Name: Ada, Column 2: 42" {
		t.Errorf("Unexpected row text: %q", got)
	}
}
