package words

// Subst replaces the occurrences of x in template, in order, with the
// letters of filler read cyclically. An empty filler deletes x.
func Subst(template Word, x int, filler Word) Word {
	if len(filler) == 0 {
		return Delete(template, x)
	}
	out := make(Word, len(template))
	i := 0
	for j, l := range template {
		if l == x {
			out[j] = filler[i%len(filler)]
			i++
		} else {
			out[j] = l
		}
	}

	return out
}

// Replace identifies letter from with letter to.
func Replace(w Word, from, to int) Word { return Subst(w, from, Word{to}) }

// Delete removes every occurrence of letter.
func Delete(w Word, letter int) Word {
	out := make(Word, 0, len(w))
	for _, l := range w {
		if l != letter {
			out = append(out, l)
		}
	}

	return out
}

// MOSSubstitutionScalesOnePerm returns the canonical, deduplicated words
// obtained by filling the slots X of the template MOS n0·L (n1+n2)·X with
// every rotation, by multiples of its generator, of the filling MOS
// n1·m n2·s. Negative counts yield nil.
func MOSSubstitutionScalesOnePerm(n0, n1, n2 int) []Word {
	if n0 < 0 || n1 < 0 || n2 < 0 {
		return nil
	}
	template, _ := BrightestMOSBresenham(n0, n1+n2)
	filler, gen := BrightestMOSBresenham(n1, n2)
	if len(filler) == 0 {
		if len(template) == 0 {
			return nil
		}
		return []Word{Canonical(template)}
	}
	for i := range filler {
		filler[i]++
	}
	out := make([]Word, 0, n1+n2)
	for i := 0; i < n1+n2; i++ {
		rotated := Rotate(filler, (i*gen.Len())%len(filler))
		out = append(out, Canonical(Subst(template, 1, rotated)))
	}

	return SortUnique(out)
}

// MOSSubstitutionScales returns every MOS substitution scale with step
// signature sig, for each of the three choices of template letter, in
// canonical form, sorted and deduplicated.
func MOSSubstitutionScales(sig [3]int) []Word {
	n0, n1, n2 := sig[0], sig[1], sig[2]
	var all []Word
	// n0·L (n1·m n2·s)
	all = append(all, MOSSubstitutionScalesOnePerm(n0, n1, n2)...)
	// n1·m (n2·s n0·L)
	for _, w := range MOSSubstitutionScalesOnePerm(n1, n2, n0) {
		all = append(all, relabel(w, func(x int) int { return (x + 1) % 3 }))
	}
	// n2·s (n0·L n1·m)
	for _, w := range MOSSubstitutionScalesOnePerm(n2, n0, n1) {
		all = append(all, relabel(w, func(x int) int { return (x + 2) % 3 }))
	}
	for i, w := range all {
		all[i] = Canonical(w)
	}

	return SortUnique(all)
}

// IsMOSSubst reports whether w is ternary and a MOS substitution scale for
// some choice of template letter.
func IsMOSSubst(w Word) bool {
	steps := StepSet(w)
	if len(steps) != 3 {
		return false
	}
	x, y, z := steps[0], steps[1], steps[2]

	return mosSubst(w, x, y, z) || mosSubst(w, y, x, z) || mosSubst(w, z, x, y)
}

// IsMOSSubstOnePerm reports whether w is ternary, deleting t leaves a MOS,
// and identifying f1 with f2 leaves a MOS.
func IsMOSSubstOnePerm(w Word, t, f1, f2 int) bool {
	return StepVariety(w) == 3 && mosSubst(w, t, f1, f2)
}

func mosSubst(w Word, t, f1, f2 int) bool {
	return MaximumVarietyIs(Delete(w, t), 2) && MaximumVarietyIs(Replace(w, f1, f2), 2)
}

// MonotoneLM reports whether identifying L with m leaves a MOS.
func MonotoneLM(w Word) bool { return MaximumVarietyIs(Replace(w, 1, 0), 2) }

// MonotoneMS reports whether identifying m with s leaves a MOS.
func MonotoneMS(w Word) bool { return MaximumVarietyIs(Replace(w, 2, 1), 2) }

// MonotoneS0 reports whether deleting s leaves a MOS.
func MonotoneS0(w Word) bool { return MaximumVarietyIs(Delete(w, 2), 2) }

// IsMonotoneMOS reports whether w is ternary and MonotoneLM, MonotoneMS and
// MonotoneS0 all hold.
func IsMonotoneMOS(w Word) bool {
	return StepVariety(w) == 3 && MonotoneLM(w) && MonotoneMS(w) && MonotoneS0(w)
}

// IsPairwiseMOS reports whether w is ternary and identifying any two of its
// step sizes leaves a MOS.
func IsPairwiseMOS(w Word) bool {
	return StepVariety(w) == 3 &&
		MaximumVarietyIs(Replace(w, 1, 0), 2) &&
		MaximumVarietyIs(Replace(w, 1, 2), 2) &&
		MaximumVarietyIs(Replace(w, 2, 0), 2)
}

func relabel(w Word, f func(int) int) Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[i] = f(l)
	}

	return out
}
