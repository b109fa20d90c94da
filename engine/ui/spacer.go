package ui

// Spacer reserves Size pixels along the parent's stacking direction.
type Spacer struct {
	Size float32
}

func Space(px float32) *Spacer { return &Spacer{Size: px} }

func (s *Spacer) Name() string { return "Spacer" }

func (s *Spacer) Measure(ctx MeasureContext) Response {
	return Response{Size: ctx.Layout.Direction.point(maxf(s.Size, 0), 0)}
}

func (s *Spacer) Process(ProcessContext) {}

