package model

// Clone returns a deep copy of p. The driver works on a local clone so the
// caller's Project is never mutated.
func (p *Project) Clone() *Project {
	out := &Project{
		Students: make([]Student, len(p.Students)),
		Groups:   make([]Group, len(p.Groups)),
		Weights:  p.Weights.clone(),
		Meta:     cloneMeta(p.Meta),
	}
	for i := range p.Students {
		out.Students[i] = p.Students[i].clone()
	}
	for i := range p.Groups {
		out.Groups[i] = p.Groups[i].clone()
	}

	return out
}

func (s Student) clone() Student {
	out := s
	out.Characteristics = make(map[string]CharValue, len(s.Characteristics))
	for k, v := range s.Characteristics {
		out.Characteristics[k] = v
	}
	out.Liked = append([]int(nil), s.Liked...)
	out.Disliked = append([]int(nil), s.Disliked...)

	return out
}

func (g Group) clone() Group {
	out := g
	out.StudentIDs = append([]int(nil), g.StudentIDs...)
	out.PinnedStudentIDs = append([]int(nil), g.PinnedStudentIDs...)
	out.Constraints = append([]Constraint(nil), g.Constraints...)

	return out
}

func (w Weights) clone() Weights {
	out := w
	out.CharacteristicWeights = make(map[string]float64, len(w.CharacteristicWeights))
	for k, v := range w.CharacteristicWeights {
		out.CharacteristicWeights[k] = v
	}

	return out
}

func cloneMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
