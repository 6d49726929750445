package hal

// fillRGBA paints every RGBA8888 pixel in buf opaque r, g, b.
func fillRGBA(buf []byte, r, g, b uint8) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = 0xFF
	}
}
