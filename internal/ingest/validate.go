package ingest

import (
	"bytes"
	"strings"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

const bytesPerMB = 1024 * 1024

// pdfMagic is the header every PDF file starts with. The version suffix is
// not required, some producers emit a bare "%PDF".
var pdfMagic = []byte("%PDF")

// ValidateUpload checks an uploaded file's name, size and content before it is
// accepted, and determines its document kind from the extension. PDF uploads
// additionally need a valid PDF header so mislabeled files are rejected early.
func ValidateUpload(name string, content []byte, maxSizeMB int) (domain.DocumentKind, error) {
	if strings.TrimSpace(name) == "" {
		return "", serrors.With(serrors.ErrValidation, "filename is empty or invalid")
	}

	var kind domain.DocumentKind
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".pdf"):
		kind = domain.DocumentKindPDF
	case strings.HasSuffix(strings.ToLower(name), ".txt"):
		kind = domain.DocumentKindText
	default:
		return "", serrors.With(serrors.ErrValidation,
			"file type not allowed for %q, allowed types: .pdf, .txt", name)
	}

	if len(content) == 0 {
		return "", serrors.With(serrors.ErrValidation, "file %q is empty", name)
	}

	if maxSizeMB > 0 && len(content) > maxSizeMB*bytesPerMB {
		return "", serrors.With(serrors.ErrValidation,
			"file %q is too large (%.1fMB), maximum allowed size is %dMB",
			name, float64(len(content))/bytesPerMB, maxSizeMB)
	}

	if kind == domain.DocumentKindPDF && !bytes.HasPrefix(content, pdfMagic) {
		return "", serrors.With(serrors.ErrValidation,
			"file %q does not appear to be a valid PDF", name)
	}

	return kind, nil
}
