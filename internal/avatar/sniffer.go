// Package avatar validates uploaded profile pictures by magic bytes, not by
// the client-declared content type.
package avatar

import (
	"bytes"
	"errors"
	"io"
)

type ImageType string

const (
	TypeJPEG ImageType = "jpeg"
	TypePNG  ImageType = "png"
	TypeWEBP ImageType = "webp"
)

var ErrUnknownType = errors.New("unknown or unsupported image type")

type Result struct {
	Type ImageType
	MIME string
	Ext  string
}

// Detect reads up to 512 bytes and classifies them. The consumed head is
// returned so the caller can stitch the stream back together.
func Detect(r io.Reader) (Result, []byte, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Result{}, nil, err
	}
	head = head[:n]

	result, err := DetectHead(head)
	return result, head, err
}

func DetectHead(head []byte) (Result, error) {
	switch {
	case isJPEG(head):
		return Result{Type: TypeJPEG, MIME: "image/jpeg", Ext: "jpg"}, nil
	case isPNG(head):
		return Result{Type: TypePNG, MIME: "image/png", Ext: "png"}, nil
	case isWEBP(head):
		return Result{Type: TypeWEBP, MIME: "image/webp", Ext: "webp"}, nil
	}
	return Result{}, ErrUnknownType
}

func isJPEG(head []byte) bool {
	return len(head) > 3 &&
		head[0] == 0xff &&
		head[1] == 0xd8 &&
		head[2] == 0xff
}

func isPNG(head []byte) bool {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return len(head) >= len(pngMagic) && bytes.Equal(head[:len(pngMagic)], pngMagic)
}

func isWEBP(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WEBP"))
}
