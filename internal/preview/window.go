package preview

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// window is an ebiten.Game that shows a fixed image until Escape or Q is
// pressed.
type window struct {
	src image.Image
	img *ebiten.Image
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(_, _ int) (int, int) {
	b := w.src.Bounds()
	return b.Dx(), b.Dy()
}

// Window opens a window titled title showing page and blocks until it is
// closed.
func Window(title string, page []byte, scale int) error {
	img, err := Image(page, scale)
	if err != nil {
		return err
	}

	b := img.Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(&window{src: img}); err != nil {
		return fmt.Errorf("preview: window: %w", err)
	}
	return nil
}
