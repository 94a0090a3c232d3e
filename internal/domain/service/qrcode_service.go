package service

// QRCodeGenerator renders share links as QR code images.
type QRCodeGenerator interface {
	// GeneratePNG encodes content as a PNG image of size x size pixels.
	GeneratePNG(content string, size int) ([]byte, error)
}
