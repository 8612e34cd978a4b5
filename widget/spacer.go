package widget

// HSpacer is a flexible gap for rows. It asks for the full content
// width but accepts zero, so it absorbs leftover space before sized
// siblings shrink.
func HSpacer() *Panel {
	return Box(SizeRel(1, 0))
}

// VSpacer is the column counterpart of HSpacer.
func VSpacer() *Panel {
	return Box(SizeRel(0, 1))
}

// Gap is a fixed-size gap in cells.
func Gap(w, h float64) *Panel {
	return Box(Size(w, h))
}
