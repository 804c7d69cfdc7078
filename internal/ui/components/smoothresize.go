package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// followContent marks a SmoothResize that is not animating.
const followContent float32 = -1

// SmoothResize wraps content and eases its reported height from the old to
// the new minimum whenever content changes inside Transition. Content is
// always laid out at its own minimum height and is not clipped, so it never
// intercepts scroll or drag events meant for an enclosing scroller.
type SmoothResize struct {
	widget.BaseWidget

	content fyne.CanvasObject
	height  float32
	anim    *fyne.Animation
}

// NewSmoothResize wraps content.
func NewSmoothResize(content fyne.CanvasObject) *SmoothResize {
	s := &SmoothResize{content: content, height: followContent}
	s.ExtendBaseWidget(s)
	return s
}

// Transition runs change and animates from the height before it to the
// content's new minimum height.
func (s *SmoothResize) Transition(change func()) {
	from := s.currentHeight()
	change()
	to := s.content.MinSize().Height

	if s.anim != nil {
		s.anim.Stop()
		s.anim = nil
	}
	if from == to {
		s.height = followContent
		s.Refresh()
		return
	}

	s.height = from
	s.anim = fyne.NewAnimation(canvas.DurationStandard, func(p float32) {
		if p >= 1 {
			s.height = followContent
		} else {
			s.height = from + (to-from)*p
		}
		s.Refresh()
	})
	s.anim.Curve = fyne.AnimationEaseOut
	s.anim.Start()
}

// Animating reports whether a height transition is in progress.
func (s *SmoothResize) Animating() bool {
	return s.height != followContent
}

func (s *SmoothResize) currentHeight() float32 {
	if s.height != followContent {
		return s.height
	}
	return s.content.MinSize().Height
}

// CreateRenderer implements fyne.Widget.
func (s *SmoothResize) CreateRenderer() fyne.WidgetRenderer {
	return &smoothResizeRenderer{s: s}
}

type smoothResizeRenderer struct {
	s *SmoothResize
}

func (r *smoothResizeRenderer) Layout(size fyne.Size) {
	r.s.content.Move(fyne.NewPos(0, 0))
	r.s.content.Resize(fyne.NewSize(size.Width, r.s.content.MinSize().Height))
}

func (r *smoothResizeRenderer) MinSize() fyne.Size {
	min := r.s.content.MinSize()
	if r.s.height != followContent {
		min.Height = r.s.height
	}
	return min
}

func (r *smoothResizeRenderer) Refresh() {
	r.Layout(r.s.Size())
	r.s.content.Refresh()
}

func (r *smoothResizeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.s.content}
}

func (r *smoothResizeRenderer) Destroy() {}
