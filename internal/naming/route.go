package naming

import (
	"github.com/holybiber/image-tools/internal/config"
	"github.com/holybiber/image-tools/internal/scan"
)

// Destination subfolder names inside the run's output directory.
const (
	SubdirWhatsAppImages = "Whatsapp-Bilder"
	SubdirVideos         = "Videos"
	SubdirImages         = "Bilder"
)

// Subdirs lists every destination subfolder, in creation order.
func Subdirs() []string {
	return []string{SubdirVideos, SubdirWhatsAppImages, SubdirImages}
}

// Route maps a file's source category and extension to its destination
// subfolder. Videos always land in the Videos subfolder regardless of
// which category produced them; that precedence is the whole mapping, with
// no other hidden rules.
func Route(category config.Category, ext string) string {
	switch category {
	case config.CategoryWhatsAppImages:
		return SubdirWhatsAppImages
	case config.CategoryWhatsAppVideos:
		return SubdirVideos
	}
	if scan.IsVideo(ext) {
		return SubdirVideos
	}
	return SubdirImages
}
