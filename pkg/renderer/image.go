package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Image is an 8-bit RGB raster. Row 0 is the top of the picture.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // Packed RGB, row-major
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// At returns the RGB triple at (x, y)
func (img *Image) At(x, y int) [3]uint8 {
	i := 3 * (y*img.Width + x)
	return [3]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
}

// Set stores the RGB triple at (x, y)
func (img *Image) Set(x, y int, rgb [3]uint8) {
	i := 3 * (y*img.Width + x)
	copy(img.Pix[i:i+3], rgb[:])
}

// Clone returns a deep copy of the image
func (img *Image) Clone() *Image {
	clone := &Image{Width: img.Width, Height: img.Height, Pix: make([]uint8, len(img.Pix))}
	copy(clone.Pix, img.Pix)
	return clone
}

// Filter returns a copy where every interior pixel is the mean of the non-black pixels in its
// 3x3 neighbourhood. Pixels whose neighbourhood is entirely black, and border pixels, are unchanged.
func (img *Image) Filter() *Image {
	out := img.Clone()
	for y := 1; y < img.Height-1; y++ {
		for x := 1; x < img.Width-1; x++ {
			var sum [3]int
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					p := img.At(x+dx, y+dy)
					if p == [3]uint8{} {
						continue
					}
					sum[0] += int(p[0])
					sum[1] += int(p[1])
					sum[2] += int(p[2])
					count++
				}
			}
			if count > 0 {
				out.Set(x, y, [3]uint8{uint8(sum[0] / count), uint8(sum[1] / count), uint8(sum[2] / count)})
			}
		}
	}
	return out
}

// MedianFilter returns a copy where each channel of each pixel is the median of that channel over
// the (2*radius+1)² window around it, clipped to the image bounds
func (img *Image) MedianFilter(radius int) *Image {
	out := img.Clone()
	if radius <= 0 {
		return out
	}

	window := make([]uint8, 0, (2*radius+1)*(2*radius+1))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var rgb [3]uint8
			for c := 0; c < 3; c++ {
				window = window[:0]
				for wy := max(0, y-radius); wy <= min(img.Height-1, y+radius); wy++ {
					for wx := max(0, x-radius); wx <= min(img.Width-1, x+radius); wx++ {
						window = append(window, img.Pix[3*(wy*img.Width+wx)+c])
					}
				}
				rgb[c] = quickselect(window, len(window)/2)
			}
			out.Set(x, y, rgb)
		}
	}
	return out
}

// quickselect returns the k-th smallest value, reordering values in place
func quickselect(values []uint8, k int) uint8 {
	left, right := 0, len(values)-1
	for left < right {
		pivot := partition(values, left, right)
		switch {
		case k < pivot:
			right = pivot - 1
		case k > pivot:
			left = pivot + 1
		default:
			return values[k]
		}
	}
	return values[left]
}

// partition places values[right] at its sorted position within [left, right] and returns that position
func partition(values []uint8, left, right int) int {
	pivot := values[right]
	index := left
	for j := left; j < right; j++ {
		if values[j] <= pivot {
			values[index], values[j] = values[j], values[index]
			index++
		}
	}
	values[index], values[right] = values[right], values[index]
	return index
}

// ToRGBA converts the image for use with the standard image encoders
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return rgba
}

// WritePNG encodes the image as PNG
func (img *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, img.ToRGBA())
}

// WritePPM encodes the image as binary PPM (P6)
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	if _, err := bw.Write(img.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

// Save writes the image to path in the given format ("png" or "ppm"), creating parent directories
func (img *Image) Save(path, format string) (err error) {
	var write func(io.Writer) error
	switch format {
	case "png":
		write = img.WritePNG
	case "ppm":
		write = img.WritePPM
	default:
		return fmt.Errorf("renderer: unknown image format %q", format)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("renderer: creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("renderer: creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("renderer: closing %s: %w", path, closeErr)
		}
	}()

	if err := write(file); err != nil {
		return fmt.Errorf("renderer: writing %s: %w", path, err)
	}
	return nil
}
