package component

// Particle is a cosmetic spark with a fixed lifetime.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Dead    bool
}

// Alpha fades from 1 to 0 over the particle's life.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
