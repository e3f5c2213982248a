package bundle

import (
	"fmt"
	"strings"

	"github.com/agentic-research/faceplate/internal/model"
)

// Delivery selects how a finished bundle leaves the process.
type Delivery string

const (
	// DeliveryArchive packages the bundle as one zip handed to an ArchiveSink.
	DeliveryArchive Delivery = "archive"
	// DeliveryFolder writes loose files into a filesystem from a DirectoryProvider.
	DeliveryFolder Delivery = "folder"
)

// ParseDelivery accepts "archive", "zip" and "folder".
func ParseDelivery(s string) (Delivery, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "archive", "zip":
		return DeliveryArchive, nil
	case "folder", "dir", "directory":
		return DeliveryFolder, nil
	}
	return "", fmt.Errorf("unknown delivery mode %q (want archive or folder)", s)
}

// Options controls one export.
type Options struct {
	Optimize                bool
	Responsive              bool
	IncludeDeveloperWindows bool
	Delivery                Delivery
	// IncludeMockRelay ships mock-relay.js and references it from every
	// index.html so the bundle runs standalone in a browser.
	IncludeMockRelay bool
	// ProjectName names the archive and the integration document. The
	// snapshot name is used when empty.
	ProjectName string
}

// DefaultOptions is an optimized, responsive archive export.
func DefaultOptions() Options {
	return Options{
		Optimize:   true,
		Responsive: true,
		Delivery:   DeliveryArchive,
	}
}

func (o Options) project(snap *model.Snapshot) string {
	if name := strings.TrimSpace(o.ProjectName); name != "" {
		return name
	}
	if name := strings.TrimSpace(snap.Name); name != "" {
		return name
	}
	return "faceplate"
}

// ArchiveName is the file name an archive export is written under.
func ArchiveName(project string) string {
	slug := model.NormalizeName(project)
	if slug == "" {
		slug = "project"
	}
	return slug + "-faceplate.zip"
}
