// Package text loads color fonts, shapes code-point sequences and renders
// them into RGBA bitmaps.
//
// # Overview
//
// A FontSource holds the font bytes once and is shared by everything else:
//
//	source, err := text.NewFontSourceFromFile("seguiemj.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Coverage classification shapes a sequence with kerning and ligatures and
// inspects the resulting glyph IDs:
//
//	shaper := text.NewGoTextShaper(source, float64(source.UnitsPerEm()))
//	classifier := text.NewClassifier(shaper)
//	ok := classifier.IsSupported([]rune{0x1F468, 0x200D, 0x1F469})
//
// Rendering lays the shaped glyphs out and draws COLR layers, CBDT/sbix
// bitmaps or plain outlines into an *image.NRGBA sized to the tight pixel
// bounding box:
//
//	r := text.NewRasterizer(source, 256)
//	img, box, err := r.Render([]rune{0x1F600})
//
// # Thread Safety
//
// FontSource, GoTextShaper, Classifier and Rasterizer are safe for
// concurrent use. Bitmaps and Layouts are owned by the caller.
package text
