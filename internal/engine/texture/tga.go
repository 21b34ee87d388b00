// Package texture decodes scene images and uploads them as GL textures
// behind a per-texture readiness flag.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color
// TGA data with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header needs 18 bytes, got %d", len(data))
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	d := &tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		count:       width * height,
		pixelSize:   bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw(d.count)
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	width       int
	count       int
	written     int
	pixelSize   int
	topToBottom bool
}

// next reads one BGR(A) pixel from the source.
func (d *tgaDecoder) next() (color.RGBA, error) {
	if d.pos+d.pixelSize > len(d.src) {
		return color.RGBA{}, errTGATruncated
	}
	p := d.src[d.pos : d.pos+d.pixelSize]
	d.pos += d.pixelSize
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.pixelSize == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put stores c at the next pixel in file order. Bottom-up files are
// flipped so row 0 is always the top of the image.
func (d *tgaDecoder) put(c color.RGBA) {
	x := d.written % d.width
	y := d.written / d.width
	if !d.topToBottom {
		y = d.img.Rect.Dy() - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.written++
}

func (d *tgaDecoder) raw(n int) error {
	for i := 0; i < n && d.written < d.count; i++ {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	for d.written < d.count {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		n := int(packet&0x7F) + 1

		if packet&0x80 == 0 {
			if err := d.raw(n); err != nil {
				return err
			}
			continue
		}

		c, err := d.next()
		if err != nil {
			return err
		}
		for i := 0; i < n && d.written < d.count; i++ {
			d.put(c)
		}
	}
	return nil
}
