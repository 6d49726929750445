package portal

// rasterize fills the columns of one wall and narrows the open spans behind it.
func (r *Renderer) rasterize(t Target, s *wallSpan) {
	gap := r.cfg.EdgeGap
	pal := r.cfg.Palette

	dx := s.rightTop.X - s.leftTop.X
	if dx == 0 {
		dx = 1
	}

	for x := s.xLeft; x < s.xRight; x++ {
		if x < 0 || x >= len(r.yMin) {
			continue
		}
		yMin, yMax := r.yMin[x], r.yMax[x]
		if yMin >= yMax {
			continue
		}
		skipFloorCeil := x >= s.xMax-gap
		skipWall := x >= s.xRight-gap

		xt := float32(x-s.leftTop.X) / float32(dx)

		depth := Lerp(s.left.Y(), s.right.Y(), xt)
		c := s.hsv.shade(r.cfg.brightness(abs32(depth)))

		yTop := clampInt(LerpInt(s.leftTop.Y, s.rightTop.Y, xt), yMin, yMax)
		yBottom := clampInt(LerpInt(s.leftBot.Y, s.rightBot.Y, xt), yMin, yMax)

		if !skipFloorCeil {
			vline(t, x, yMin, yTop-gap, pal.Ceiling)
		}

		if s.portal {
			if s.upper {
				yPortalTop := clampInt(LerpInt(s.upperLeft, s.upperRight, xt), yMin, yBottom)
				if !skipWall {
					vline(t, x, yTop, yPortalTop-gap, c)
				}
				r.yMin[x] = yPortalTop
			} else {
				r.yMin[x] = yTop
			}

			if s.lower {
				yPortalBottom := clampInt(LerpInt(s.lowerLeft, s.lowerRight, xt), yTop, yMax)
				if !skipWall {
					vline(t, x, yPortalBottom, yBottom-gap, c)
				}
				r.yMax[x] = yPortalBottom
			} else {
				r.yMax[x] = yBottom
			}
			if r.yMax[x] < r.yMin[x] {
				r.yMax[x] = r.yMin[x]
			}
		} else {
			if !skipWall {
				vline(t, x, yTop, yBottom-gap, c)
			}
			r.yMin[x] = yTop
			r.yMax[x] = yTop
		}

		if !skipFloorCeil {
			vline(t, x, yBottom, yMax-gap, pal.Floor)
		}
	}
}
