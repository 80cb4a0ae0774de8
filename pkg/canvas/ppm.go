package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ppm lines must not exceed 70 characters, per the format's advisory limit
const ppmMaxLineLength = 70

// WritePPM encodes the canvas in plain PPM (magic number P3) with a
// maximum color value of 255. Out-of-range channels are clamped. The
// output always ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := 0; y < c.height; y++ {
		lineLength := 0
		for x := 0; x < c.width; x++ {
			p := c.pixels[y][x]
			for _, channel := range []float64{p.R, p.G, p.B} {
				sample := strconv.Itoa(int(quantize(channel)))

				// wrap before the sample that would overflow the line
				if lineLength > 0 {
					if lineLength+1+len(sample) > ppmMaxLineLength {
						if err := bw.WriteByte('\n'); err != nil {
							return fmt.Errorf("writing ppm body: %w", err)
						}
						lineLength = 0
					} else {
						if err := bw.WriteByte(' '); err != nil {
							return fmt.Errorf("writing ppm body: %w", err)
						}
						lineLength++
					}
				}

				if _, err := bw.WriteString(sample); err != nil {
					return fmt.Errorf("writing ppm body: %w", err)
				}
				lineLength += len(sample)
			}
		}
		if lineLength > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("writing ppm body: %w", err)
			}
		}
	}

	return bw.Flush()
}
