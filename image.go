package borealis

// Image draws an image source passed through to the backend untouched.
type Image struct {
	Base
	src ImageSource
}

// NewImageFromPath creates an image loaded by the backend from path.
func NewImageFromPath(path string) *Image {
	img := &Image{src: ImageSource{Path: path}}
	img.Init(img, KindGeneric)
	return img
}

// NewImageFromData creates an image from an encoded buffer. The buffer is
// copied.
func NewImageFromData(data []byte) *Image {
	img := &Image{src: ImageSource{Data: append([]byte(nil), data...)}}
	img.Init(img, KindGeneric)
	return img
}

// Source returns the image source.
func (img *Image) Source() ImageSource { return img.src }

// SetScaleType sets how the image fills its bounds.
func (img *Image) SetScaleType(scale ImageScale) {
	img.src.Scale = scale
	img.redraw()
}

// Draw implements View.
func (img *Image) Draw(ctx *FrameContext) {
	ctx.Canvas.Image(img.bounds, img.src)
}

// Rectangle fills its bounds with a solid color.
type Rectangle struct {
	Base
	color Color
}

// NewRectangle creates a rectangle.
func NewRectangle(c Color) *Rectangle {
	r := &Rectangle{color: c}
	r.Init(r, KindGeneric)
	return r
}

// SetColor changes the fill color.
func (r *Rectangle) SetColor(c Color) {
	r.color = c
	r.redraw()
}

// Draw implements View.
func (r *Rectangle) Draw(ctx *FrameContext) {
	ctx.Canvas.FillRect(r.bounds, ctx.Fade(r.color))
}
