package ingest_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/ingest"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

func TestValidateUpload(t *testing.T) {
	t.Parallel()

	pdfBytes := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), 100)...)

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantKind domain.DocumentKind
		wantErr  bool
	}{
		{name: "ValidText", filename: "notes.txt", content: []byte("some text"), wantKind: domain.DocumentKindText},
		{name: "ValidPDF", filename: "slides.pdf", content: pdfBytes, wantKind: domain.DocumentKindPDF},
		{name: "BarePDFHeader", filename: "scan.pdf", content: []byte("%PDF stream data"), wantKind: domain.DocumentKindPDF},
		{name: "UppercaseExtension", filename: "NOTES.TXT", content: []byte("some text"), wantKind: domain.DocumentKindText},
		{name: "EmptyName", filename: "   ", content: []byte("x"), wantErr: true},
		{name: "DisallowedType", filename: "image.png", content: []byte("x"), wantErr: true},
		{name: "EmptyFile", filename: "empty.txt", content: nil, wantErr: true},
		{name: "FakePDF", filename: "fake.pdf", content: []byte("not a pdf at all"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			kind, err := ingest.ValidateUpload(tc.filename, tc.content, 50)
			if tc.wantErr {
				if err == nil || !errors.Is(err, serrors.ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}

				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tc.wantKind {
				t.Fatalf("expected kind %s, got %s", tc.wantKind, kind)
			}
		})
	}
}

func TestValidateUpload_TooLarge(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("a"), 2*1024*1024)
	_, err := ingest.ValidateUpload("big.txt", content, 1)
	if err == nil || !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
