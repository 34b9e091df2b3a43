package prop

// NewPropeller builds a propeller from parametric inputs: numSections
// radial stations linearly spaced from hubRadius to the tip, chord
// interpolated linearly from chordRoot to chordTip, twist from
// twistRoot to twistTip (deg). Every section shares the same lift and
// drag curves (single airfoil for the whole blade).
//
// With numSections == 1 the single station sits at hubRadius. Fails
// with InvalidGeometryError when numSections < 1, the diameter does
// not exceed twice the hub radius, or any produced chord is
// non-positive.
func NewPropeller(numBlades int, diameter, hubRadius float64, numSections int,
	chordRoot, chordTip, twistRoot, twistTip float64, lift, drag Curve) (*Propeller, error) {

	if numSections < 1 {
		return nil, &InvalidGeometryError{"number of sections must be at least 1"}
	}

	radii := linspace(hubRadius, diameter/2, numSections)
	chords := linspace(chordRoot, chordTip, numSections)
	twists := linspace(twistRoot, twistTip, numSections)

	sections := make([]BladeSection, numSections)
	for i := range sections {
		sections[i] = BladeSection{
			Radius: radii[i],
			Chord:  chords[i],
			Twist:  twists[i],
			Lift:   lift,
			Drag:   drag,
		}
	}

	p := &Propeller{
		NumBlades: numBlades,
		Diameter:  diameter,
		HubRadius: hubRadius,
		Sections:  sections,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// linspace returns n values evenly spaced from start to end inclusive.
// With n == 1 the single value is start.
func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}
