package livecharts

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window Run creates.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run creates a window and drives the chart view's update/draw loop until
// the window closes. For full control, implement [ebiten.Game] yourself and
// delegate to [ChartView.Update], [ChartView.Draw], and [ChartView.Layout].
func Run(view *ChartView, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&viewGame{view: view})
}

type viewGame struct {
	view *ChartView
}

func (g *viewGame) Update() error {
	return g.view.Update()
}

func (g *viewGame) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
}

func (g *viewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Layout(outsideWidth, outsideHeight)
}
