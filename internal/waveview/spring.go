package waveview

import "github.com/charmbracelet/harmonica"

// springField eases each child's scale toward its target fraction. Damping is
// fixed at 1 (critical), so positions approach the target without overshoot.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency float64) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, 1.0)}
}

// reset sizes the field for n children, all resting at start.
func (s *springField) reset(n int, start float64) {
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
	for i := range s.pos {
		s.pos[i] = start
	}
}

func (s *springField) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}
