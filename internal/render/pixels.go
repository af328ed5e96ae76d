package render

// fillGrayRGBA converts scalar cell data (0..255) into opaque grayscale RGBA
// pixels in buf.
func fillGrayRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c
		buf[base+1] = c
		buf[base+2] = c
		buf[base+3] = 0xff
	}
}
